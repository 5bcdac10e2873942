package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/supgit/internal/cmd"
)

// Gateway runs the git binary. Every call spawns exactly one process.
type Gateway interface {
	// Invoke runs git attached to the terminal.
	Invoke(ctx context.Context, args ...string) error
	// InvokeSilent runs git with its normal output suppressed; the caller
	// prints its own confirmation instead.
	InvokeSilent(ctx context.Context, args ...string) error
	// InvokeCaptured runs git without inheriting streams and returns what it
	// wrote. Output is returned on failure too.
	InvokeCaptured(ctx context.Context, args ...string) (cmd.Captured, error)
}

// ToolError reports a git invocation that exited non-zero.
type ToolError struct {
	Args     []string
	ExitCode int
	Status   string
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("git %s failed with %s", strings.Join(e.Args, " "), e.Status)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Shell is the Gateway backed by the git binary on PATH.
type Shell struct {
	// Dir is the working directory for git. Empty means the process cwd.
	Dir string
}

// NewShell returns a Gateway running git in the current directory.
func NewShell() *Shell {
	return &Shell{}
}

func (s *Shell) Invoke(ctx context.Context, args ...string) error {
	return toolError(args, cmd.StreamContext(ctx, s.Dir, "git", args...))
}

func (s *Shell) InvokeSilent(ctx context.Context, args ...string) error {
	return toolError(args, cmd.RunContext(ctx, s.Dir, "git", args...))
}

func (s *Shell) InvokeCaptured(ctx context.Context, args ...string) (cmd.Captured, error) {
	out, err := cmd.CaptureContext(ctx, s.Dir, "git", args...)
	return out, toolError(args, err)
}

// toolError converts an exit failure into a *ToolError carrying the full
// argument list. Other errors (cancellation, git missing) pass through.
func toolError(args []string, err error) error {
	var exitErr *cmd.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}
	return &ToolError{
		Args:     args,
		ExitCode: exitErr.ExitCode,
		Status:   exitErr.Status,
		Stderr:   exitErr.Stderr,
	}
}
