package reducer

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/reducers-go/action"
)

var (
	// ErrPayloadTypeMismatch is the sentinel matched by PayloadTypeError.
	ErrPayloadTypeMismatch = errors.New("payload type mismatch")

	// ErrNilAction is raised when a reducer with a defined state is called without an action.
	ErrNilAction = errors.New("action must not be nil")

	// ErrEmptyReducerName is returned by WithName for an empty name.
	ErrEmptyReducerName = errors.New("reducer name must not be empty")
)

// PayloadTypeError describes an action whose payload does not have the type its handler was associated with.
//
// It is a precondition violation, reducers panic with it.
type PayloadTypeError struct {
	ActionType action.TypeString
	Expected   string
	Actual     string
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("%s: action %q carries %s, handler expects %s", ErrPayloadTypeMismatch, e.ActionType, e.Actual, e.Expected)
}

// Is makes errors.Is(err, ErrPayloadTypeMismatch) match a PayloadTypeError.
func (e *PayloadTypeError) Is(target error) bool {
	return target == ErrPayloadTypeMismatch
}
