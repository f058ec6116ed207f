package statemachine

// Schema is the transition-query contract shared by every schema
// variant. A schema is immutable after construction and may be shared
// by any number of machines simultaneously without synchronization.
type Schema[S comparable, E any, T any] interface {
	InitialState() S
	Transition(state S, event E) (Transition[S, T], bool)
}

// SchemaDefinition is the plain schema: an initial state plus a
// transition function, with no enumeration requirements on the state
// or event types. The zero burden on those types is deliberate; only
// graph export needs more (see the visualization package).
type SchemaDefinition[S comparable, E any, T any] struct {
	initialState S
	transition   TransitionFunc[S, E, T]
}

// NewSchema creates a schema from an initial state and a transition
// function. Construction never fails: any state is a legal initial
// state, and a nil transition function models a schema that ignores
// every event.
func NewSchema[S comparable, E any, T any](initialState S, transition TransitionFunc[S, E, T]) *SchemaDefinition[S, E, T] {
	return &SchemaDefinition[S, E, T]{
		initialState: initialState,
		transition:   transition,
	}
}

// InitialState returns the state every machine built from this schema
// starts in.
func (s *SchemaDefinition[S, E, T]) InitialState() S {
	return s.initialState
}

// Transition queries the transition logic for the given pair. The
// second result is false when the pair is undefined.
func (s *SchemaDefinition[S, E, T]) Transition(state S, event E) (Transition[S, T], bool) {
	if s.transition == nil {
		var none Transition[S, T]
		return none, false
	}
	return s.transition(state, event)
}

// NewMachine builds a machine bound to this schema that strongly owns
// subject.
func (s *SchemaDefinition[S, E, T]) NewMachine(subject T) *Machine[S, E, T] {
	return NewMachine[S, E, T](s, subject)
}
