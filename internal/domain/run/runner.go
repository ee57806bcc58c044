package run

import (
	"context"
	"time"

	"github.com/tedd-an/rigup/internal/domain/execution"
	"github.com/tedd-an/rigup/internal/domain/plan"
	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/ports"
)

// Runner drives a plan through the Executor on a single logical thread.
// Machine bootstrap is strictly sequential: later steps depend on
// earlier ones having mutated host state, and package installs hold an
// exclusive database lock anyway.
type Runner struct {
	exec    *execution.Executor
	log     ports.Logger
	policy  FailurePolicy
	timeout time.Duration
}

// NewRunner creates a Runner with the default StopOnFirstFailure policy.
func NewRunner(exec *execution.Executor, log ports.Logger) *Runner {
	return &Runner{
		exec:   exec,
		log:    log,
		policy: StopOnFirstFailure,
	}
}

// WithPolicy returns a Runner using the given failure policy.
func (r *Runner) WithPolicy(policy FailurePolicy) *Runner {
	return &Runner{exec: r.exec, log: r.log, policy: policy, timeout: r.timeout}
}

// WithTimeout returns a Runner with a whole-run deadline. Once exceeded,
// no new steps are dispatched; a step already started is never cancelled
// mid-flight.
func (r *Runner) WithTimeout(timeout time.Duration) *Runner {
	return &Runner{exec: r.exec, log: r.log, policy: r.policy, timeout: timeout}
}

// Run executes the plan against the host and returns the report. Every
// plan entry receives exactly one Outcome; steps that never execute are
// recorded as Skipped with the reason in the detail.
func (r *Runner) Run(ctx context.Context, p *plan.Plan, host *execution.HostContext) (*Report, error) {
	machine, err := newRunMachine()
	if err != nil {
		return nil, err
	}

	report := NewReport()
	machine.begin()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.log.Info(ctx, "run started",
		ports.F("run_id", report.RunID()),
		ports.F("steps", p.Len()),
		ports.F("policy", r.policy.String()))

	// Steps whose failure (or failure-induced skip) blocks dependents.
	blocked := make(map[string]bool)
	halted := false
	deadline := false

	for _, d := range p.Entries() {
		id := d.ID().String()

		switch {
		case halted:
			report.Append(execution.NewOutcome(d.ID(), execution.StatusSkipped).
				WithDetail("skipped: earlier step failed"))
			continue
		case ctx.Err() != nil:
			deadline = true
			report.Append(execution.NewOutcome(d.ID(), execution.StatusSkipped).
				WithDetail("skipped: run deadline exceeded"))
			continue
		case r.dependencyBlocked(d.DependsOn(), blocked):
			blocked[id] = true
			report.Append(execution.NewOutcome(d.ID(), execution.StatusSkipped).
				WithDetail("skipped: dependency failed"))
			continue
		}

		outcome := r.exec.Execute(ctx, d, host)
		report.Append(outcome)

		if outcome.Failed() {
			r.log.Error(ctx, "step failed",
				ports.F("step", id),
				ports.F("exit_code", outcome.ExitCode()),
				ports.F("detail", outcome.Detail()))

			blocked[id] = true
			if r.policy == StopOnFirstFailure {
				halted = true
			}
			continue
		}

		r.log.Info(ctx, "step done",
			ports.F("step", id),
			ports.F("status", outcome.Status().String()))
	}

	if halted || deadline {
		machine.abort()
	} else {
		machine.complete()
	}
	report.Finish(machine.state())

	summary := report.Summary()
	r.log.Info(ctx, "run finished",
		ports.F("run_id", report.RunID()),
		ports.F("state", string(report.State())),
		ports.F("succeeded", summary.Succeeded),
		ports.F("skipped", summary.Skipped),
		ports.F("failed", summary.Failed))

	return report, nil
}

// dependencyBlocked reports whether any direct dependency failed or was
// itself blocked. Blocked ids accumulate as the plan unrolls, which
// makes the check transitive without walking the graph.
func (r *Runner) dependencyBlocked(deps []step.ID, blocked map[string]bool) bool {
	for _, dep := range deps {
		if blocked[dep.String()] {
			return true
		}
	}
	return false
}
