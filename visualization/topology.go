package visualization

import "github.com/dominikbraun/graph"

// UnreachableStates returns the enumerated states that no event
// sequence can reach from the initial state. A non-empty result
// usually points at a schema bug or a stale DOTLabelableItems list.
// Like digraph construction, this probes the transition function
// exhaustively and never invokes transition blocks.
func (g *GraphableSchema[S, E, T]) UnreachableStates() []S {
	dg := graph.New(func(s S) S { return s }, graph.Directed())
	for _, state := range g.states {
		_ = dg.AddVertex(state)
	}
	for _, state := range g.states {
		for _, event := range g.events {
			transition, ok := g.Transition(state, event)
			if !ok {
				continue
			}
			// Parallel edges collapse to one; reachability only needs
			// the first. Edges to states outside the enumeration are
			// dropped by the vertex check inside AddEdge.
			_ = dg.AddEdge(state, transition.Target)
		}
	}

	visited := make(map[S]bool, len(g.states))
	_ = graph.BFS(dg, g.initialState, func(s S) bool {
		visited[s] = true
		return false
	})

	var unreachable []S
	for _, state := range g.states {
		if !visited[state] {
			unreachable = append(unreachable, state)
		}
	}
	return unreachable
}
