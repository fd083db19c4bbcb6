package reducer

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/AntonStoeckl/reducers-go/action"
)

// Handler computes the complete next state from the current state and an action's payload.
type Handler[S any] func(state S, payload any) S

// PartialHandler computes the changed subset of a map-shaped state from the current state and an action's payload.
// The reducer merges the returned keys shallowly into a copy of the current state.
type PartialHandler[M any] func(state M, payload any) M

// Handlers maps action types to full-replace handlers.
type Handlers[S any] map[action.TypeString]Handler[S]

// PartialHandlers maps action types to partial (append) handlers.
type PartialHandlers[M any] map[action.TypeString]PartialHandler[M]

// Combine merges handler mappings into a new one containing the union of their action types.
//
// If an action type appears in more than one mapping, the handler from the later mapping wins.
// This is not treated as an error. The input mappings are not modified.
func Combine[H ~map[action.TypeString]V, V any](mappings ...H) H {
	combined := make(H)

	for _, mapping := range mappings {
		maps.Copy(combined, mapping)
	}

	return combined
}

// Associate creates a single-entry mapping from the constructor's action type to a typed handler.
//
// The handler receives the payload as P. If a dispatched action of that type carries a payload of another type,
// the reducer panics with a *PayloadTypeError.
func Associate[S, D, P any](c action.Constructor[D, P], handle func(state S, payload P) S) Handlers[S] {
	actionType := c.Type()

	return Handlers[S]{
		actionType: func(state S, payload any) S {
			return handle(state, payloadAs[P](actionType, payload))
		},
	}
}

// AssociatePartial creates a single-entry mapping from the constructor's action type to a typed partial handler.
//
// It follows the same payload type rules as Associate.
func AssociatePartial[M, D, P any](c action.Constructor[D, P], handle func(state M, payload P) M) PartialHandlers[M] {
	actionType := c.Type()

	return PartialHandlers[M]{
		actionType: func(state M, payload any) M {
			return handle(state, payloadAs[P](actionType, payload))
		},
	}
}

// payloadAs asserts payload to P.
// A nil payload is accepted as the zero value when P is an interface type.
func payloadAs[P any](actionType action.TypeString, payload any) P {
	if typed, ok := payload.(P); ok {
		return typed
	}

	expected := reflect.TypeOf((*P)(nil)).Elem()

	var zero P
	if payload == nil && expected.Kind() == reflect.Interface {
		return zero
	}

	panic(&PayloadTypeError{
		ActionType: actionType,
		Expected:   expected.String(),
		Actual:     fmt.Sprintf("%T", payload),
	})
}
