// Package statemachine provides a small generic finite state machine
// library built around an immutable, reusable schema. A schema pairs an
// initial state with closure-based transition logic and can back any
// number of machine instances at once; each machine owns its current
// state and an optional subject that transition blocks can observe and
// mutate. The visualization subpackage derives Graphviz DOT diagrams
// from the same transition logic used at runtime.
package statemachine
