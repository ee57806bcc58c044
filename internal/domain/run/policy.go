// Package run drives an execution plan through the Executor and
// aggregates per-step Outcomes into a Report.
package run

import "fmt"

// FailurePolicy decides what happens to the rest of a plan after a step
// fails.
type FailurePolicy string

const (
	// StopOnFirstFailure aborts the run at the first failed step; every
	// remaining step is recorded as Skipped without executing.
	StopOnFirstFailure FailurePolicy = "stop"
	// BestEffort keeps executing independent steps after a failure,
	// skipping only the transitive dependents of failed steps.
	BestEffort FailurePolicy = "best-effort"
)

// String returns the string representation of the policy.
func (p FailurePolicy) String() string {
	return string(p)
}

// ParsePolicy converts a string into a FailurePolicy.
func ParsePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case StopOnFirstFailure:
		return StopOnFirstFailure, nil
	case BestEffort:
		return BestEffort, nil
	}
	return "", fmt.Errorf("unknown failure policy %q (want %q or %q)", s, StopOnFirstFailure, BestEffort)
}
