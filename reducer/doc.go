// Package reducer builds dispatch-table based state reducers.
//
// A reducer is a pure state transition function (state, action) -> state, called by a store for every
// dispatched action. This package builds it from a mapping of action types to handlers, so application code
// does not have to write the switch over action types itself.
//
// Two strategies are supported:
//   - Build: full replacement, the handler returns the complete next state
//   - BuildAppend: shallow-merge-append, the handler returns only the changed keys of a map-shaped state
//
// Both reducers return the configured initial state when called with a nil state (the uninitialized sentinel),
// and return the state pointer they were given, untouched, for actions without a handler.
// Stores relying on reference equality for change detection are therefore not triggered by unrelated actions.
//
// Common usage pattern:
//
//	inc := action.Make[int]("inc")
//	dec := action.Make[int]("dec")
//
//	counter := reducer.Assemble(
//		[]reducer.Handlers[int]{
//			reducer.Associate(inc, func(s, p int) int { return s + p }),
//			reducer.Associate(dec, func(s, p int) int { return s - p }),
//		},
//		0,
//		reducer.WithName("counter"),
//		reducer.WithLogger(slog.Default()),
//	)
//
//	state := counter(nil, inc.Create(0)) // -> 0, the initial state
//	state = counter(state, inc.Create(10)) // -> 10
//	state = counter(state, dec.Create(5))  // -> 5
package reducer
