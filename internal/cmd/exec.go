// Package cmd provides helpers for executing external commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/supgit/internal/log"
)

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Name     string
	Args     []string
	ExitCode int    // -1 when killed by a signal
	Status   string // exec's description, e.g. "exit status 1" or "signal: killed"
	Stderr   string // trimmed, empty when stderr was not captured
}

// Error returns the captured stderr when there is one, like the tool
// itself would have printed it.
func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s failed with %s", e.Name, e.Status)
}

// Captured holds the output of a command run without inheriting streams.
type Captured struct {
	Stdout string
	Stderr string
}

// RunContext executes a command, discarding stdout and returning stderr
// as the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, io.Discard, nil)
	return err
}

// OutputContext executes a command and returns stdout, with stderr as the
// error message if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	if _, err := run(ctx, dir, name, args, &stdout, nil); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// CaptureContext executes a command and returns both streams. The streams
// are returned on failure too so callers can inspect them.
func CaptureContext(ctx context.Context, dir, name string, args ...string) (Captured, error) {
	var stdout bytes.Buffer
	stderr, err := run(ctx, dir, name, args, &stdout, nil)
	return Captured{Stdout: stdout.String(), Stderr: stderr}, err
}

// StreamContext executes a command attached to the terminal: stdin,
// stdout and stderr are inherited so git can page, prompt for
// credentials and print progress.
func StreamContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, os.Stdout, os.Stderr)
	return err
}

// run executes name with args. A nil stderr means stderr is captured and
// returned; otherwise it is written to the given writer.
func run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) (string, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	defer func() { done(time.Since(start)) }()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = stdout

	var captured bytes.Buffer
	if stderr == nil {
		c.Stderr = &captured
	} else {
		c.Stdin = os.Stdin
		c.Stderr = stderr
	}

	err := c.Run()
	errText := strings.TrimSpace(captured.String())
	if err == nil {
		return captured.String(), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return captured.String(), ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return captured.String(), &ExitError{
			Name:     name,
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Status:   exitErr.String(),
			Stderr:   errText,
		}
	}
	return captured.String(), fmt.Errorf("run %s: %w", name, err)
}
