package run

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State is the lifecycle state of one run.
type State string

const (
	// StateNotStarted means Run has not been called.
	StateNotStarted State = "not-started"
	// StateInProgress means steps are being dispatched.
	StateInProgress State = "in-progress"
	// StateCompleted means every plan entry received an Outcome.
	StateCompleted State = "completed"
	// StateAborted means the run stopped early: first failure under the
	// stop policy, or the run deadline expired.
	StateAborted State = "aborted"
)

// Run lifecycle events.
const (
	eventBegin    = "BEGIN"
	eventComplete = "COMPLETE"
	eventAbort    = "ABORT"
)

// machineContext carries no data; the machine only tracks position.
type machineContext struct{}

// runMachine wraps the statekit interpreter for the run lifecycle.
// Transitions are fixed: not-started -> in-progress -> completed|aborted.
type runMachine struct {
	interp *statekit.Interpreter[machineContext]
}

// newRunMachine builds and starts the lifecycle machine.
func newRunMachine() (*runMachine, error) {
	machine, err := statekit.NewMachine[machineContext]("rigup-run").
		WithInitial(statekit.StateID(StateNotStarted)).
		WithContext(machineContext{}).
		State(statekit.StateID(StateNotStarted)).
		On(eventBegin).Target(statekit.StateID(StateInProgress)).Done().
		State(statekit.StateID(StateInProgress)).
		On(eventComplete).Target(statekit.StateID(StateCompleted)).
		On(eventAbort).Target(statekit.StateID(StateAborted)).Done().
		State(statekit.StateID(StateCompleted)).Done().
		State(statekit.StateID(StateAborted)).Done().
		Build()
	if err != nil {
		return nil, fmt.Errorf("build run machine: %w", err)
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()

	return &runMachine{interp: interp}, nil
}

func (m *runMachine) begin() {
	m.interp.Send(statekit.Event{Type: eventBegin})
}

func (m *runMachine) complete() {
	m.interp.Send(statekit.Event{Type: eventComplete})
}

func (m *runMachine) abort() {
	m.interp.Send(statekit.Event{Type: eventAbort})
}

func (m *runMachine) state() State {
	return State(m.interp.State().Value)
}
