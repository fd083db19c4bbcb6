package action

import (
	"fmt"
)

// Effect transforms the input of a Constructor into the payload of the produced Action.
// It may be impure (e.g. generating an ID), it is invoked exactly once per Create call.
type Effect[D, P any] func(input D) P

// Identity is the default Effect, the input becomes the payload unchanged.
func Identity[D any](input D) D {
	return input
}

// Constructor builds actions of exactly one type.
//
// It is bound to its discriminator and Effect at construction time and never changes afterward,
// so it is safe to use from multiple goroutines.
type Constructor[D, P any] struct {
	actionType TypeString
	effect     Effect[D, P]
}

// Make creates a Constructor whose payload is its input (identity effect).
//
// It panics with an error wrapping ErrEmptyActionType if actionType is empty.
func Make[D any](actionType TypeString) Constructor[D, D] {
	return MakeWithEffect[D, D](actionType, Identity[D])
}

// MakeWithEffect creates a Constructor that derives the payload from its input with the given effect.
//
// It panics with an error wrapping ErrEmptyActionType if actionType is empty,
// or with an error wrapping ErrNilEffect if effect is nil.
func MakeWithEffect[D, P any](actionType TypeString, effect Effect[D, P]) Constructor[D, P] {
	if actionType == "" {
		panic(fmt.Errorf("building action constructor: %w", ErrEmptyActionType))
	}

	if effect == nil {
		panic(fmt.Errorf("building action constructor %q: %w", actionType, ErrNilEffect))
	}

	return Constructor[D, P]{
		actionType: actionType,
		effect:     effect,
	}
}

// Create applies the effect to input and returns a fresh Action.
func (c Constructor[D, P]) Create(input D) Action[P] {
	return Action[P]{
		Type:    c.actionType,
		Payload: c.effect(input),
	}
}

// Type returns the discriminator of the actions this Constructor builds.
// It is the key to use when associating a handler with this Constructor.
func (c Constructor[D, P]) Type() TypeString {
	return c.actionType
}

// String returns the discriminator, so a Constructor prints as the action type it builds.
func (c Constructor[D, P]) String() string {
	return c.actionType
}
