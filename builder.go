package statemachine

// SchemaBuilder assembles a table-driven schema through a fluent
// interface. It suits the common case where the transition topology is
// a finite table rather than computed logic; for the latter, write a
// TransitionFunc directly and use NewSchema.
//
// Event types must be comparable here because declarations are stored
// in a map keyed by (state, event).
type SchemaBuilder[S comparable, E comparable, T any] struct {
	initial S
	table   map[S]map[E]Transition[S, T]
}

// NewSchemaBuilder creates a builder for a schema starting in initial.
func NewSchemaBuilder[S comparable, E comparable, T any](initial S) *SchemaBuilder[S, E, T] {
	return &SchemaBuilder[S, E, T]{
		initial: initial,
		table:   make(map[S]map[E]Transition[S, T]),
	}
}

// Permit declares that event moves the machine from one state to
// another, with no transition block.
func (b *SchemaBuilder[S, E, T]) Permit(from S, event E, to S) *SchemaBuilder[S, E, T] {
	return b.PermitWithAction(from, event, to, nil)
}

// PermitWithAction declares a transition with a block that runs with
// the subject each time the transition executes. A later declaration
// for the same (state, event) pair overwrites an earlier one.
func (b *SchemaBuilder[S, E, T]) PermitWithAction(from S, event E, to S, action SubjectFunc[T]) *SchemaBuilder[S, E, T] {
	row, ok := b.table[from]
	if !ok {
		row = make(map[E]Transition[S, T])
		b.table[from] = row
	}
	row[event] = Transition[S, T]{Target: to, Action: action}
	return b
}

// Build snapshots the declared table into an immutable schema. The
// builder stays usable afterwards; further declarations do not affect
// schemas already built.
func (b *SchemaBuilder[S, E, T]) Build() *SchemaDefinition[S, E, T] {
	table := make(map[S]map[E]Transition[S, T], len(b.table))
	for from, row := range b.table {
		copied := make(map[E]Transition[S, T], len(row))
		for event, transition := range row {
			copied[event] = transition
		}
		table[from] = copied
	}

	return NewSchema(b.initial, func(state S, event E) (Transition[S, T], bool) {
		transition, ok := table[state][event]
		return transition, ok
	})
}
