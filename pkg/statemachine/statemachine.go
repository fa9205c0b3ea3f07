// Package statemachine implements Rob Pike's "state function" pattern:
// a state is a function that performs its work and returns the next
// state function, or nil to terminate. The engine's turn/step driver
// (pkg/engine) uses this to walk the turn's twelve steps, one state
// function per step.
package statemachine

// StateEvent marks why a callback fired.
type StateEvent int

const (
	StateEntered StateEvent = iota
	StateExited
)

// StateFn is one state: given the entity it drives and an optional
// observer callback, it performs its work and returns the next state.
type StateFn[T any] func(*T, func(stateName string, event StateEvent)) StateFn[T]

// StateMachine drives a single entity of type T through a sequence of
// StateFn values. A game is single-owner and single-threaded, so this
// carries no mutex — callers never dispatch it from more than one
// goroutine.
type StateMachine[T any] struct {
	entity  *T
	stateFn StateFn[T]
}

// NewStateMachine creates a new state machine for the given entity.
func NewStateMachine[T any](entity *T, initialStateFn StateFn[T]) *StateMachine[T] {
	return &StateMachine[T]{entity: entity, stateFn: initialStateFn}
}

// Dispatch calls the current state function once and transitions to
// the state it returns. callback is optional and may be nil.
func (sm *StateMachine[T]) Dispatch(callback func(stateName string, event StateEvent)) {
	if sm.stateFn == nil {
		return
	}
	sm.stateFn = sm.stateFn(sm.entity, callback)
}

// Current returns the current state function (nil means terminated).
func (sm *StateMachine[T]) Current() StateFn[T] {
	return sm.stateFn
}

// SetState forces a transition without running the new state's entry
// logic.
func (sm *StateMachine[T]) SetState(stateFn StateFn[T]) {
	sm.stateFn = stateFn
}
