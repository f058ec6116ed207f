package statemachine

import (
	"weak"

	"github.com/google/uuid"
)

// Machine is a mutable instance of a schema. It tracks the current
// state, resolves its subject on every dispatch, and notifies the
// OnTransition callback and any registered observers after each
// executed transition.
//
// A machine is single-threaded by contract: it must not be used from
// multiple goroutines without external synchronization. Reentrant
// dispatch from within a transition block is legal; the nested call
// completes its full cycle before the outer call proceeds.
type Machine[S comparable, E any, T any] struct {
	// OnTransition, when set, is invoked once per executed transition
	// with the old state, the event, and the new state. It runs after
	// the transition block.
	OnTransition TransitionCallback[S, E]

	id        uuid.UUID
	schema    Schema[S, E, T]
	state     S
	resolve   func() (T, bool)
	observers []Observer[S, E]
}

// NewMachine creates a machine bound to schema that strongly owns
// subject. The machine starts in the schema's initial state; no
// validation is performed because any state is a legal initial state.
func NewMachine[S comparable, E any, T any](schema Schema[S, E, T], subject T) *Machine[S, E, T] {
	return newMachine(schema, func() (T, bool) { return subject, true })
}

// NewWeakMachine creates a machine that holds subject through a weak
// pointer. Use it when the subject itself references the machine,
// directly or transitively; a strong reference in both directions
// would form a cycle that keeps both alive. The caller must keep an
// owning reference to the subject elsewhere. Once the subject has been
// reclaimed, HandleEvent becomes a silent no-op.
func NewWeakMachine[S comparable, E any, T any](schema Schema[S, E, *T], subject *T) *Machine[S, E, *T] {
	ref := weak.Make(subject)
	return newMachine(schema, func() (*T, bool) {
		p := ref.Value()
		return p, p != nil
	})
}

// NewMachineWithResolver creates a machine whose subject is resolved by
// the given function on every dispatch, for subjects held in an
// externally owned table or behind some other non-owning handle.
// Resolving to false makes HandleEvent a silent no-op.
func NewMachineWithResolver[S comparable, E any, T any](schema Schema[S, E, T], resolve func() (T, bool)) *Machine[S, E, T] {
	return newMachine(schema, resolve)
}

func newMachine[S comparable, E any, T any](schema Schema[S, E, T], resolve func() (T, bool)) *Machine[S, E, T] {
	return &Machine[S, E, T]{
		id:      uuid.New(),
		schema:  schema,
		state:   schema.InitialState(),
		resolve: resolve,
	}
}

// ID returns the unique identifier assigned to this machine instance.
// Schemas are shared; the id tells instances apart in logs.
func (m *Machine[S, E, T]) ID() uuid.UUID {
	return m.id
}

// State returns the current state.
func (m *Machine[S, E, T]) State() S {
	return m.state
}

// Schema returns the schema this machine is bound to.
func (m *Machine[S, E, T]) Schema() Schema[S, E, T] {
	return m.schema
}

// HandleEvent dispatches an event. If the subject has been reclaimed,
// or the schema defines no transition for the current (state, event)
// pair, the call is a silent no-op. Otherwise the machine enters the
// target state, then runs the transition block with the resolved
// subject, then invokes OnTransition, then notifies observers in
// registration order.
//
// The state changes before the transition block runs, so code inside
// the block observes the machine already in the new state and may
// legally call HandleEvent again to chase a follow-up event.
func (m *Machine[S, E, T]) HandleEvent(event E) {
	subject, ok := m.resolve()
	if !ok {
		return
	}

	transition, ok := m.schema.Transition(m.state, event)
	if !ok {
		return
	}

	from := m.state
	m.state = transition.Target

	if transition.Action != nil {
		transition.Action(subject)
	}
	if m.OnTransition != nil {
		m.OnTransition(from, event, transition.Target)
	}
	m.notifyTransition(from, event, transition.Target)
}
