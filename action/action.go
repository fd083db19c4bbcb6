package action

// TypeString is the discriminator which names the kind of an action.
type TypeString = string

// Dispatchable is the payload-agnostic view of an Action.
//
// Reducers accept Dispatchable so that a single reducer can receive actions with different payload types.
type Dispatchable interface {
	// ActionType returns the discriminator of the action.
	ActionType() TypeString

	// PayloadAny returns the payload as an untyped value.
	PayloadAny() any
}

// Action is an immutable value describing one state-changing event.
//
// While its fields are exported, it should be built with a Constructor.
type Action[P any] struct {
	Type    TypeString
	Payload P
}

// ActionType returns the discriminator of the action.
func (a Action[P]) ActionType() TypeString {
	return a.Type
}

// PayloadAny returns the payload as an untyped value.
func (a Action[P]) PayloadAny() any {
	return a.Payload
}
