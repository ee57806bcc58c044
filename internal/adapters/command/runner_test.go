package command

import (
	"context"
	"testing"
	"time"

	"github.com/tedd-an/rigup/internal/adapters/logging"
)

func TestNewRealRunner(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())
	if runner == nil {
		t.Error("NewRealRunner() should not return nil")
	}
}

func TestRealRunner_Run_Success(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())

	result, err := runner.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success() {
		t.Error("Run() should succeed for 'echo hello'")
	}
	if result.Stdout != "hello\n" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello\n")
	}
}

func TestRealRunner_Run_NonZeroExit(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())

	result, err := runner.Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("Run() error = %v (should return result with exit code, not error)", err)
	}
	if result.Success() {
		t.Error("Run() should fail for 'false'")
	}
	if result.ExitCode == 0 {
		t.Error("ExitCode should be non-zero for 'false'")
	}
}

func TestRealRunner_Run_NotFound(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())

	_, err := runner.Run(context.Background(), "nonexistent-command-12345")
	if err == nil {
		t.Error("Run() should return error for non-existent command")
	}
}

func TestRealRunner_Run_CapturesStderr(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())

	result, err := runner.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", result.ExitCode)
	}
	if result.Stderr != "oops\n" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "oops\n")
	}
}

func TestRealRunner_Run_ContextCancellation(t *testing.T) {
	runner := NewRealRunner(logging.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := runner.Run(ctx, "sleep", "10")
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Run() did not honor the deadline, took %s", elapsed)
	}
	if err == nil && result.Success() {
		t.Error("Run() should not report success when the deadline expires")
	}
}
