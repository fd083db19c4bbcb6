package reducer

import (
	"fmt"
	"maps"
	"time"

	"github.com/AntonStoeckl/reducers-go/action"
)

// Reducer is the state transition function a store calls for every dispatched action.
//
// A nil state is the uninitialized sentinel, the reducer answers it with the initial state regardless of the action.
// For a defined state, the reducer returns either the next state or, if no handler is registered
// for the action's type, the very same pointer it was given.
//
// Reducers close over immutable configuration and are safe for concurrent use.
type Reducer[S any] func(state *S, a action.Dispatchable) *S

// Build creates a full-replace Reducer: the value returned by the action's handler becomes the next state.
//
// The handlers are copied, later changes to the given mapping don't affect the Reducer.
// It panics if an Option fails.
func Build[S any](handlers Handlers[S], initial S, opts ...Option) Reducer[S] {
	cfg := buildConfig(opts...)
	table := maps.Clone(handlers)
	cfg.observeBuilt(strategyReplace, len(table))

	return reduce(cfg, func() S { return initial }, func(actionType action.TypeString) (Handler[S], bool) {
		handle, ok := table[actionType]
		return handle, ok
	})
}

// BuildAppend creates a shallow-merge-append Reducer for map-shaped state.
//
// The action's handler returns only the changed keys, the next state is a new map holding the current state's
// entries overwritten by the returned ones. Values are replaced, never merged recursively.
// The current state map is never modified.
//
// The handlers and the initial map are copied, later changes to either don't affect the Reducer.
// Every initialization returns its own copy of the initial map.
// It panics if an Option fails.
func BuildAppend[M ~map[K]V, K comparable, V any](handlers PartialHandlers[M], initial M, opts ...Option) Reducer[M] {
	cfg := buildConfig(opts...)
	table := maps.Clone(handlers)
	initial = maps.Clone(initial)
	cfg.observeBuilt(strategyAppend, len(table))

	return reduce(cfg, func() M { return maps.Clone(initial) }, func(actionType action.TypeString) (Handler[M], bool) {
		handlePartial, ok := table[actionType]
		if !ok {
			return nil, false
		}

		return func(state M, payload any) M {
			return shallowMerge(state, handlePartial(state, payload))
		}, true
	})
}

// Assemble combines the mappings (later mappings win on conflicts) and builds a full-replace Reducer from them.
func Assemble[S any](mappings []Handlers[S], initial S, opts ...Option) Reducer[S] {
	return Build(Combine(mappings...), initial, opts...)
}

// AssembleAppend combines the mappings (later mappings win on conflicts) and builds a shallow-merge-append Reducer.
func AssembleAppend[M ~map[K]V, K comparable, V any](mappings []PartialHandlers[M], initial M, opts ...Option) Reducer[M] {
	return BuildAppend(Combine(mappings...), initial, opts...)
}

func reduce[S any](cfg config, initialState func() S, lookup func(action.TypeString) (Handler[S], bool)) Reducer[S] {
	return func(state *S, a action.Dispatchable) *S {
		if state == nil {
			cfg.observeInitialization(a)
			initialized := initialState()

			return &initialized
		}

		if a == nil {
			panic(fmt.Errorf("reducer %q: %w", cfg.name, ErrNilAction))
		}

		actionType := a.ActionType()

		handle, ok := lookup(actionType)
		if !ok {
			cfg.observeIgnored(actionType)
			return state
		}

		next := runHandler(cfg, handle, actionType, *state, a.PayloadAny())

		return &next
	}
}

func runHandler[S any](cfg config, handle Handler[S], actionType action.TypeString, state S, payload any) S {
	if !cfg.observed() {
		return handle(state, payload)
	}

	if cfg.logger != nil {
		defer func() {
			if recovered := recover(); recovered != nil {
				cfg.logHandlerPanic(actionType, recovered)
				panic(recovered)
			}
		}()
	}

	start := time.Now()
	next := handle(state, payload)
	cfg.observeHandled(actionType, time.Since(start))

	return next
}

func shallowMerge[M ~map[K]V, K comparable, V any](state M, partial M) M {
	merged := make(M, len(state)+len(partial))
	maps.Copy(merged, state)
	maps.Copy(merged, partial)

	return merged
}
