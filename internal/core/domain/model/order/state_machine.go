package order

import (
	"fmt"
	"strconv"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

// Transitions lists, for each source state, the states it may move to.
type Transitions map[Status][]Status

// PermissiveTransitions allows every known state to reach every known state,
// including Closed -> Issued.
func PermissiveTransitions() Transitions {
	all := AllStatuses()
	t := make(Transitions, len(all))
	for _, from := range all {
		t[from] = append([]Status(nil), all...)
	}
	return t
}

// StateMachine decides which lifecycle changes are legal and applies them.
type StateMachine struct {
	allowed map[Status]map[Status]bool
	clock   kernel.Clock
}

// NewStateMachine returns a machine over PermissiveTransitions.
func NewStateMachine(clock kernel.Clock) *StateMachine {
	sm, _ := NewStateMachineWithTransitions(clock, PermissiveTransitions())
	return sm
}

// NewStateMachineWithTransitions builds a machine with a custom table. Every state in
// the table must be known.
func NewStateMachineWithTransitions(clock kernel.Clock, transitions Transitions) (*StateMachine, error) {
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}

	allowed := make(map[Status]map[Status]bool, len(transitions))
	for from, targets := range transitions {
		if err := from.Validate(); err != nil {
			return nil, err
		}
		allowed[from] = make(map[Status]bool, len(targets))
		for _, to := range targets {
			if err := to.Validate(); err != nil {
				return nil, err
			}
			allowed[from][to] = true
		}
	}

	return &StateMachine{allowed: allowed, clock: clock}, nil
}

// CanTransition reports whether current may move to target.
func (m *StateMachine) CanTransition(current, target Status) bool {
	return m.allowed[current][target]
}

// Apply moves o to target. Entering Closed stamps the actual end with the clock's
// time unless one is already recorded; leaving Closed keeps it.
func (m *StateMachine) Apply(o *Order, target Status) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, errs.NewUnknownStateErrorWithCause(strconv.Itoa(int(target)), err)
	}
	if !m.CanTransition(o.status, target) {
		return nil, errs.NewValueIsInvalidErrorWithCause("target state",
			fmt.Errorf("transition %s -> %s is not allowed", o.status, target))
	}

	o.status = target
	if target == Closed && o.actualEnd == nil {
		now := m.clock.Now().UTC()
		o.actualEnd = &now
	}

	return o, nil
}
