package action

import (
	"fmt"
)

const (
	// StartSuffix is appended to the base type of a Lifecycle for its Start action.
	StartSuffix = ":start"

	// SuccessSuffix is appended to the base type of a Lifecycle for its Success action.
	SuccessSuffix = ":success"

	// FailSuffix is appended to the base type of a Lifecycle for its Fail action.
	FailSuffix = ":fail"
)

// Lifecycle groups the three constructors which describe the phases of one asynchronous operation.
//
// It only builds the actions, running and sequencing the operation is up to the caller.
type Lifecycle[S, O, F any] struct {
	Start   Constructor[S, S]
	Success Constructor[O, O]
	Fail    Constructor[F, F]
}

// LifecycleEffects holds optional payload transforms for the phases of a Lifecycle.
// A nil effect means identity.
type LifecycleEffects[S, O, F any] struct {
	Start   Effect[S, S]
	Success Effect[O, O]
	Fail    Effect[F, F]
}

// LifecycleTypes returns the discriminators of the start, success, and fail phases for base.
//
// Use it to build the phase constructors with MakeWithEffect when their input and payload types differ.
func LifecycleTypes(base TypeString) (start, success, fail TypeString) {
	return base + StartSuffix, base + SuccessSuffix, base + FailSuffix
}

// MakeLifecycle creates a Lifecycle for base with identity effects on all phases.
func MakeLifecycle[S, O, F any](base TypeString) Lifecycle[S, O, F] {
	return MakeLifecycleWithEffects(base, LifecycleEffects[S, O, F]{})
}

// MakeLifecycleWithEffects creates a Lifecycle for base, each phase using its effect from effects or identity.
//
// It panics with an error wrapping ErrEmptyActionType if base is empty.
func MakeLifecycleWithEffects[S, O, F any](base TypeString, effects LifecycleEffects[S, O, F]) Lifecycle[S, O, F] {
	if base == "" {
		panic(fmt.Errorf("building lifecycle: %w", ErrEmptyActionType))
	}

	start, success, fail := LifecycleTypes(base)

	return Lifecycle[S, O, F]{
		Start:   MakeWithEffect(start, orIdentity(effects.Start)),
		Success: MakeWithEffect(success, orIdentity(effects.Success)),
		Fail:    MakeWithEffect(fail, orIdentity(effects.Fail)),
	}
}

func orIdentity[T any](effect Effect[T, T]) Effect[T, T] {
	if effect == nil {
		return Identity[T]
	}

	return effect
}
