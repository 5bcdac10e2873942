// Package gittest provides a recording git.Gateway for tests.
//
// A Recorder never spawns a process. Each invocation is appended to Calls
// and answered from the scripted responses, matched by the joined
// argument list. Unscripted invocations succeed with empty output.
package gittest

import (
	"context"
	"strconv"
	"strings"

	"github.com/raphi011/supgit/internal/cmd"
	"github.com/raphi011/supgit/internal/git"
)

// Mode identifies which Gateway method was called.
type Mode string

const (
	Streamed Mode = "invoke"
	Silent   Mode = "silent"
	Captured Mode = "captured"
)

// Call is one recorded invocation.
type Call struct {
	Mode Mode
	Args []string
}

// Line returns the argument list joined by spaces.
func (c Call) Line() string {
	return strings.Join(c.Args, " ")
}

// Response is the scripted outcome for an argument list.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int // non-zero makes the call fail with a *git.ToolError
}

// Recorder is a git.Gateway double.
type Recorder struct {
	Calls     []Call
	responses map[string]Response
}

var _ git.Gateway = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{responses: make(map[string]Response)}
}

// On scripts the response for the given argument list.
func (r *Recorder) On(args string, resp Response) *Recorder {
	r.responses[args] = resp
	return r
}

// Fail scripts a failure with the given stderr for the argument list.
func (r *Recorder) Fail(args, stderr string) *Recorder {
	return r.On(args, Response{Stderr: stderr, ExitCode: 1})
}

// Lines returns the joined argument lists of all calls made in mode.
func (r *Recorder) Lines(mode Mode) []string {
	var lines []string
	for _, c := range r.Calls {
		if c.Mode == mode {
			lines = append(lines, c.Line())
		}
	}
	return lines
}

// Mutations returns the joined argument lists of every non-captured call,
// which is every call that could change the repository.
func (r *Recorder) Mutations() []string {
	var lines []string
	for _, c := range r.Calls {
		if c.Mode != Captured {
			lines = append(lines, c.Line())
		}
	}
	return lines
}

func (r *Recorder) Invoke(ctx context.Context, args ...string) error {
	_, err := r.record(Streamed, args)
	return err
}

func (r *Recorder) InvokeSilent(ctx context.Context, args ...string) error {
	_, err := r.record(Silent, args)
	return err
}

func (r *Recorder) InvokeCaptured(ctx context.Context, args ...string) (cmd.Captured, error) {
	return r.record(Captured, args)
}

func (r *Recorder) record(mode Mode, args []string) (cmd.Captured, error) {
	r.Calls = append(r.Calls, Call{Mode: mode, Args: append([]string(nil), args...)})

	resp := r.responses[strings.Join(args, " ")]
	out := cmd.Captured{Stdout: resp.Stdout, Stderr: resp.Stderr}
	if resp.ExitCode == 0 {
		return out, nil
	}
	return out, &git.ToolError{
		Args:     append([]string(nil), args...),
		ExitCode: resp.ExitCode,
		Status:   "exit status " + strconv.Itoa(resp.ExitCode),
		Stderr:   strings.TrimSpace(resp.Stderr),
	}
}
