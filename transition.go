package statemachine

// SubjectFunc is a transition block: a side effect run once per executed
// transition, after the machine has already entered the new state.
type SubjectFunc[T any] func(subject T)

// Transition describes the outcome of a transition query: the state the
// machine should enter and an optional block to run with the subject.
type Transition[S comparable, T any] struct {
	Target S
	Action SubjectFunc[T]
}

// TransitionFunc decides what, if anything, an event does in a given
// state. Returning false means the pair is undefined and the event is
// ignored; this is the designed mechanism for ignoring an event in a
// given state, not an error.
type TransitionFunc[S comparable, E any, T any] func(state S, event E) (Transition[S, T], bool)

// TransitionCallback observes executed transitions. It is invoked with
// the state the machine left, the event that triggered the transition,
// and the state the machine entered.
type TransitionCallback[S comparable, E any] func(from S, event E, to S)
