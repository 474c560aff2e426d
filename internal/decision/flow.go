// Package decision drives the approve/reject flow of a loaded reservation:
// the detail view, the decision modal with its mandatory rejection
// justification, and the receipt actions attached to the same view.
package decision

import (
	"errors"
	"fmt"
)

// State is a step of the detail view lifecycle.
type State string

const (
	// StateLoading means the reservation fetch has not settled yet.
	StateLoading State = "LOADING"
	// StateIdle means the view is loaded and no decision is in progress.
	StateIdle State = "IDLE"
	// StateDecisionPending means the decision modal is open.
	StateDecisionPending State = "DECISION_PENDING"
	// StateSubmitting means the decision request is in flight.
	StateSubmitting State = "SUBMITTING"
)

// Trigger is an event that can advance the flow.
type Trigger string

const (
	TriggerLoaded Trigger = "LOADED"
	TriggerOpen   Trigger = "OPEN"
	TriggerCancel Trigger = "CANCEL"
	TriggerSubmit Trigger = "SUBMIT"
	TriggerSettle Trigger = "SETTLE"
)

// ErrInvalidTransition is returned when a trigger is not permitted in the
// current state.
var ErrInvalidTransition = errors.New("invalid state transition")

var transitions = map[State]map[Trigger]State{
	StateLoading: {
		TriggerLoaded: StateIdle,
	},
	StateIdle: {
		TriggerOpen: StateDecisionPending,
	},
	StateDecisionPending: {
		TriggerCancel: StateIdle,
		TriggerSubmit: StateSubmitting,
	},
	StateSubmitting: {
		TriggerSettle: StateIdle,
	},
}

// Flow tracks the current state and validates transitions.
type Flow struct {
	state State
}

// NewFlow creates a flow in the Loading state.
func NewFlow() *Flow {
	return &Flow{state: StateLoading}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// CanFire reports whether the trigger is permitted right now.
func (f *Flow) CanFire(trigger Trigger) bool {
	_, ok := transitions[f.state][trigger]
	return ok
}

// Fire advances the flow, or returns ErrInvalidTransition.
func (f *Flow) Fire(trigger Trigger) error {
	next, ok := transitions[f.state][trigger]
	if !ok {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, f.state)
	}
	f.state = next
	return nil
}
