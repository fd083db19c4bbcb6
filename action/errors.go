package action

import (
	"errors"
)

var (
	// ErrEmptyActionType is raised when a constructor is built with an empty discriminator.
	ErrEmptyActionType = errors.New("action type must not be empty")

	// ErrNilEffect is raised when a constructor is built with a nil effect.
	ErrNilEffect = errors.New("effect must not be nil")

	// ErrInvalidActionJSON is returned when an encoded action is not a valid {"type","payload"} document.
	ErrInvalidActionJSON = errors.New("action json is not valid")

	// ErrUnknownActionType is returned when no decoder is registered for an action type.
	ErrUnknownActionType = errors.New("unknown action type")

	// ErrDecodingPayloadFailed is returned when a payload can't be decoded into the registered payload type.
	ErrDecodingPayloadFailed = errors.New("decoding action payload failed")

	// ErrEncodingActionFailed is returned when an action can't be encoded to JSON.
	ErrEncodingActionFailed = errors.New("encoding action failed")
)
