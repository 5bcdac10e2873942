package plan

import "fmt"

// ValidationError reports a bad option combination or bad input. It is
// always raised before any git invocation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid returns a *ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PreconditionError reports that the repository is not in a state the
// command can work with.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// Precondition returns a *PreconditionError with a formatted message.
func Precondition(format string, args ...any) error {
	return &PreconditionError{Msg: fmt.Sprintf(format, args...)}
}

// ErrNotInRepo is returned by the dispatcher for repository commands run
// outside a work tree.
var ErrNotInRepo error = &PreconditionError{
	Msg: "not inside a git repository; run 'supgit init' or 'supgit clone' first",
}
