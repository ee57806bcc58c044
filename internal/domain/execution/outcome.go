// Package execution runs planned steps against the host, one at a time,
// and records an Outcome for each attempt.
package execution

import (
	"time"

	"github.com/tedd-an/rigup/internal/domain/step"
)

// Status is the state of one step. Pending and Running are transient;
// the rest are terminal and appear in Outcomes.
type Status string

const (
	// StatusPending means the step has not been dispatched yet.
	StatusPending Status = "pending"
	// StatusRunning means the step is executing.
	StatusRunning Status = "running"
	// StatusSuccess means the step mutated the host as declared.
	StatusSuccess Status = "success"
	// StatusSkipped means no action was needed, or an earlier failure
	// prevented the step from running.
	StatusSkipped Status = "skipped"
	// StatusFailed means the step was attempted and did not succeed.
	StatusFailed Status = "failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status is final.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusSkipped, StatusFailed:
		return true
	}
	return false
}

// Outcome records the result of attempting one step. Immutable after
// creation; the detail of a secret-bearing step is stored redacted.
type Outcome struct {
	stepID   step.ID
	status   Status
	detail   string
	exitCode int
	duration time.Duration
}

// NewOutcome creates an Outcome.
func NewOutcome(stepID step.ID, status Status) Outcome {
	return Outcome{stepID: stepID, status: status}
}

// StepID returns the id of the attempted step.
func (o Outcome) StepID() step.ID {
	return o.stepID
}

// Status returns the terminal status.
func (o Outcome) Status() Status {
	return o.status
}

// Detail returns the human-readable detail, already redacted for
// secret-bearing steps.
func (o Outcome) Detail() string {
	return o.detail
}

// ExitCode returns the collaborator exit code, 0 when no command ran.
func (o Outcome) ExitCode() int {
	return o.exitCode
}

// Duration returns how long the attempt took.
func (o Outcome) Duration() time.Duration {
	return o.duration
}

// Failed reports whether the step failed.
func (o Outcome) Failed() bool {
	return o.status == StatusFailed
}

// WithDetail returns a copy with detail set.
func (o Outcome) WithDetail(detail string) Outcome {
	o.detail = detail
	return o
}

// WithExitCode returns a copy with the collaborator exit code set.
func (o Outcome) WithExitCode(code int) Outcome {
	o.exitCode = code
	return o
}

// WithDuration returns a copy with duration set.
func (o Outcome) WithDuration(d time.Duration) Outcome {
	o.duration = d
	return o
}
