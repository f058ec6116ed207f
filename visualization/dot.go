// Package visualization derives Graphviz DOT transition diagrams from
// state machine schemas. A GraphableSchema is a drop-in schema variant:
// it satisfies the same transition-query contract machines run on,
// and additionally carries a DOT digraph computed once at construction
// by exhaustively probing the transition logic.
package visualization

import (
	"fmt"
	"strings"

	statemachine "github.com/macoscope/SwiftyStateMachine"
)

// DOTLabelable is the capability graph export requires from state and
// event types: the exhaustive ordered set of the type's values, and a
// display label per value.
//
// DOTLabelableItems must be callable on the zero value and must not
// depend on the receiver. The list order determines node numbering. An
// incomplete list silently produces an incomplete graph; nothing in Go
// checks the list against the type's actual values, so keep the two in
// sync by hand.
type DOTLabelable[V any] interface {
	DOTLabelableItems() []V
	DOTLabel() string
}

// GraphableState constrains the state type of a graphable schema.
// States additionally need comparability for node indexing.
type GraphableState[S any] interface {
	comparable
	DOTLabelable[S]
}

// GraphableSchema is an immutable schema whose transition topology has
// been rendered to a DOT digraph. The digraph is computed exactly once,
// at construction, with O(states x events) transition-function calls;
// transition blocks attached to probed transitions are never invoked.
type GraphableSchema[S GraphableState[S], E DOTLabelable[E], T any] struct {
	initialState S
	transition   statemachine.TransitionFunc[S, E, T]
	states       []S
	events       []E
	index        map[S]int
	dotDigraph   string
}

// NewGraphableSchema creates a graphable schema from an initial state
// and a transition function. The transition function must be a pure
// decision over its two arguments: it is called here for every
// (state, event) pair, outside any machine dispatch.
func NewGraphableSchema[S GraphableState[S], E DOTLabelable[E], T any](initialState S, transition statemachine.TransitionFunc[S, E, T]) *GraphableSchema[S, E, T] {
	var eventZero E

	g := &GraphableSchema[S, E, T]{
		initialState: initialState,
		transition:   transition,
		states:       initialState.DOTLabelableItems(),
		events:       eventZero.DOTLabelableItems(),
	}

	// Nodes are numbered 1..n in enumeration order; 0 is the synthetic
	// start node.
	g.index = make(map[S]int, len(g.states))
	for i, state := range g.states {
		g.index[state] = i + 1
	}

	g.dotDigraph = g.buildDigraph()
	return g
}

// InitialState returns the state every machine built from this schema
// starts in.
func (g *GraphableSchema[S, E, T]) InitialState() S {
	return g.initialState
}

// Transition queries the transition logic for the given pair. The
// second result is false when the pair is undefined.
func (g *GraphableSchema[S, E, T]) Transition(state S, event E) (statemachine.Transition[S, T], bool) {
	if g.transition == nil {
		var none statemachine.Transition[S, T]
		return none, false
	}
	return g.transition(state, event)
}

// NewMachine builds a machine bound to this schema that strongly owns
// subject.
func (g *GraphableSchema[S, E, T]) NewMachine(subject T) *statemachine.Machine[S, E, T] {
	return statemachine.NewMachine[S, E, T](g, subject)
}

// DOTDigraph returns the cached DOT description of the transition
// topology, suitable for rendering with Graphviz's dot command.
func (g *GraphableSchema[S, E, T]) DOTDigraph() string {
	return g.dotDigraph
}

func (g *GraphableSchema[S, E, T]) buildDigraph() string {
	var dot strings.Builder

	dot.WriteString("digraph {\n")
	dot.WriteString("    graph [rankdir=LR]\n\n")
	dot.WriteString("    0 [label=\"\", shape=plaintext]\n")
	fmt.Fprintf(&dot, "    0 -> %d [label=\"START\"]\n\n", g.index[g.initialState])

	for i, state := range g.states {
		fmt.Fprintf(&dot, "    %d [label=\"%s\"]\n", i+1, escapeDOTLabel(state.DOTLabel()))
	}
	dot.WriteString("\n")

	for _, state := range g.states {
		for _, event := range g.events {
			transition, ok := g.Transition(state, event)
			if !ok {
				continue
			}
			target, ok := g.index[transition.Target]
			if !ok {
				// Target missing from the enumerated states: the graph
				// stays incomplete rather than pointing at a bogus node.
				continue
			}
			fmt.Fprintf(&dot, "    %d -> %d [label=\"%s\"]\n", g.index[state], target, escapeDOTLabel(event.DOTLabel()))
		}
	}
	dot.WriteString("}")

	return dot.String()
}

// escapeDOTLabel escapes literal double quotes; labels are embedded in
// quoted strings in the DOT output.
func escapeDOTLabel(label string) string {
	return strings.ReplaceAll(label, `"`, `\"`)
}
