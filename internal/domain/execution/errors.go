package execution

import (
	"errors"
	"fmt"
)

// Sentinel errors for execution-time failures.
var (
	// ErrMissingParam indicates a step descriptor lacks a parameter its
	// kind requires.
	ErrMissingParam = errors.New("missing required step parameter")
)

// HostCommandFailedError carries the exit code of a collaborator command
// that ran and failed.
type HostCommandFailedError struct {
	Op       string
	ExitCode int
	Detail   string
}

// Error returns the formatted message.
func (e *HostCommandFailedError) Error() string {
	msg := fmt.Sprintf("host command failed: %s (exit %d)", e.Op, e.ExitCode)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// SecretMissingError indicates a credential-bearing step was invoked
// without its required secret parameters.
type SecretMissingError struct {
	StepID string
	Param  string
}

// Error returns the formatted message.
func (e *SecretMissingError) Error() string {
	return fmt.Sprintf("secret material missing: step %q requires param %q", e.StepID, e.Param)
}
