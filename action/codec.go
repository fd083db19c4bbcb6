package action

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the wire form of an action: {"type": "...", "payload": ...}.
type envelope struct {
	Type    TypeString          `json:"type"`
	Payload jsoniter.RawMessage `json:"payload"`
}

// Marshal encodes an action into its wire form.
func Marshal(a Dispatchable) ([]byte, error) {
	payloadJSON, err := json.Marshal(a.PayloadAny())
	if err != nil {
		return nil, errors.Join(ErrEncodingActionFailed, err)
	}

	data, err := json.Marshal(envelope{Type: a.ActionType(), Payload: payloadJSON})
	if err != nil {
		return nil, errors.Join(ErrEncodingActionFailed, err)
	}

	return data, nil
}

type payloadDecoder func(actionType TypeString, payloadJSON []byte) (Dispatchable, error)

// Decoder turns the wire form of actions back into Dispatchable values.
//
// Register all action types before decoding. A Decoder must not be registered to while it is used for decoding.
type Decoder struct {
	decoders map[TypeString]payloadDecoder
}

// NewDecoder creates an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{decoders: make(map[TypeString]payloadDecoder)}
}

// Register makes dec decode actions of the constructor's type into Action[P].
//
// The constructor's effect is not applied while decoding, the payload on the wire already is the effect's output.
// Registering the same type twice replaces the earlier registration.
//
// Payloads decode into P. For an interface P such as any, JSON numbers come back as float64 and objects as
// map[string]any, so such actions don't survive a round trip unchanged.
func Register[D, P any](dec *Decoder, c Constructor[D, P]) {
	dec.decoders[c.Type()] = func(actionType TypeString, payloadJSON []byte) (Dispatchable, error) {
		var payload P
		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &payload); err != nil {
				return nil, errors.Join(fmt.Errorf("%w for %q", ErrDecodingPayloadFailed, actionType), err)
			}
		}

		return Action[P]{Type: actionType, Payload: payload}, nil
	}
}

// RegisterLifecycle registers all three phases of a Lifecycle with dec.
func RegisterLifecycle[S, O, F any](dec *Decoder, l Lifecycle[S, O, F]) {
	Register(dec, l.Start)
	Register(dec, l.Success)
	Register(dec, l.Fail)
}

// Decode decodes the wire form of an action.
func (dec *Decoder) Decode(data []byte) (Dispatchable, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidActionJSON
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Join(ErrInvalidActionJSON, err)
	}

	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidActionJSON)
	}

	decode, ok := dec.decoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActionType, env.Type)
	}

	return decode(env.Type, env.Payload)
}
