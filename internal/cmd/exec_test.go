package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/supgit/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("RunContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	// Verify command runs in specified directory
	err := RunContext(logCtx(), "/tmp", "pwd")
	if err != nil {
		t.Errorf("RunContext with dir = %v, want nil", err)
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_Failure(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("OutputContext(exit 1) = nil, want error")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("OutputContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_ExitError(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 3")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunContext error = %T, want *ExitError", err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
	if exitErr.Name != "sh" {
		t.Errorf("Name = %q, want %q", exitErr.Name, "sh")
	}
	if got, want := exitErr.Error(), "sh failed with exit status 3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCaptureContext_Success(t *testing.T) {
	t.Parallel()
	out, err := CaptureContext(logCtx(), "", "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("CaptureContext = %v, want nil", err)
	}
	if out.Stdout != "out\n" {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "out\n")
	}
	if out.Stderr != "err\n" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "err\n")
	}
}

func TestCaptureContext_FailureKeepsStreams(t *testing.T) {
	t.Parallel()
	out, err := CaptureContext(logCtx(), "", "sh", "-c", "echo partial; echo 'not fully merged' >&2; exit 1")
	if err == nil {
		t.Fatal("CaptureContext = nil, want error")
	}
	if out.Stdout != "partial\n" {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "partial\n")
	}
	if !strings.Contains(out.Stderr, "not fully merged") {
		t.Errorf("Stderr = %q, want to contain %q", out.Stderr, "not fully merged")
	}
}

func TestRunContext_VerboseLogsCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "", "echo", "hello"); err != nil {
		t.Fatalf("RunContext = %v, want nil", err)
	}
	if !strings.HasPrefix(buf.String(), "$ echo hello") {
		t.Errorf("log output = %q, want prefix %q", buf.String(), "$ echo hello")
	}
}
