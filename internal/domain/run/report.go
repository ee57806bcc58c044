package run

import (
	"time"

	"github.com/google/uuid"

	"github.com/tedd-an/rigup/internal/domain/execution"
)

// Report is the ordered record of one run: an Outcome per dispatched
// step plus the final run state. It is owned by the Runner for the
// duration of the run and never mutated after Finish.
type Report struct {
	runID    string
	outcomes []execution.Outcome
	state    State
	started  time.Time
	finished time.Time
}

// NewReport creates an empty report with a fresh run id.
func NewReport() *Report {
	return &Report{
		runID:   uuid.NewString(),
		state:   StateNotStarted,
		started: time.Now(),
	}
}

// RunID returns the unique id of this run.
func (r *Report) RunID() string {
	return r.runID
}

// Append records an outcome.
func (r *Report) Append(o execution.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns the recorded outcomes in dispatch order.
func (r *Report) Outcomes() []execution.Outcome {
	out := make([]execution.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Finish seals the report with the final run state.
func (r *Report) Finish(state State) {
	r.state = state
	r.finished = time.Now()
}

// State returns the final run state.
func (r *Report) State() State {
	return r.state
}

// Elapsed returns the wall-clock duration of the run.
func (r *Report) Elapsed() time.Duration {
	if r.finished.IsZero() {
		return time.Since(r.started)
	}
	return r.finished.Sub(r.started)
}

// Succeeded reports overall success: every outcome Success or Skipped
// and the run not aborted.
func (r *Report) Succeeded() bool {
	if r.state == StateAborted {
		return false
	}
	for _, o := range r.outcomes {
		if o.Failed() {
			return false
		}
	}
	return true
}

// Summary aggregates outcome counts.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
}

// Summary returns aggregate statistics.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.outcomes)}
	for _, o := range r.outcomes {
		switch o.Status() {
		case execution.StatusSuccess:
			s.Succeeded++
		case execution.StatusSkipped:
			s.Skipped++
		case execution.StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Snapshot is the serializable form of a Report, for CI artifact
// collection. Details are already redacted by the time they reach the
// report, so a snapshot is safe to persist.
type Snapshot struct {
	RunID    string            `yaml:"run_id"`
	State    string            `yaml:"state"`
	Success  bool              `yaml:"success"`
	Elapsed  string            `yaml:"elapsed"`
	Outcomes []OutcomeSnapshot `yaml:"outcomes"`
}

// OutcomeSnapshot is the serializable form of one Outcome.
type OutcomeSnapshot struct {
	Step     string `yaml:"step"`
	Status   string `yaml:"status"`
	Detail   string `yaml:"detail,omitempty"`
	ExitCode int    `yaml:"exit_code,omitempty"`
	Duration string `yaml:"duration,omitempty"`
}

// Snapshot converts the report for serialization.
func (r *Report) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:   r.runID,
		State:   string(r.state),
		Success: r.Succeeded(),
		Elapsed: r.Elapsed().String(),
	}
	for _, o := range r.outcomes {
		snap.Outcomes = append(snap.Outcomes, OutcomeSnapshot{
			Step:     o.StepID().String(),
			Status:   o.Status().String(),
			Detail:   o.Detail(),
			ExitCode: o.ExitCode(),
			Duration: o.Duration().String(),
		})
	}
	return snap
}
