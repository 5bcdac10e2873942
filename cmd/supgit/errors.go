package main

import (
	"errors"
	"strings"
)

// errorChain splits err into one message per wrap level. Each level keeps
// only the text it added in front of the wrapped error.
func errorChain(err error) []string {
	var lines []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
			if msg == next.Error() {
				msg = ""
			}
		}
		if msg != "" {
			lines = append(lines, msg)
		}
		err = next
	}
	return lines
}
