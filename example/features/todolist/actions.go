package todolist

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/reducers-go/action"
)

// SyncRequest is the payload of Sync.Start.
type SyncRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	Remote    string    `json:"remote"`
}

// SyncResult is the payload of Sync.Success.
type SyncResult struct {
	RequestID uuid.UUID `json:"request_id"`
	Items     []Item    `json:"items"`
}

// SyncFailure is the payload of Sync.Fail.
type SyncFailure struct {
	RequestID uuid.UUID `json:"request_id"`
	Reason    string    `json:"reason"`
}

var (
	// ItemAdded adds an item with a fresh ID, its input is the title.
	ItemAdded = action.MakeWithEffect("todolist/add", func(title string) Item {
		return Item{ID: uuid.New(), Title: title}
	})

	// ItemToggled flips the done flag of the item with the given ID.
	ItemToggled = action.Make[uuid.UUID]("todolist/toggle")

	// ItemRemoved removes the item with the given ID.
	ItemRemoved = action.Make[uuid.UUID]("todolist/remove")

	// Sync describes the phases of synchronizing the list with a remote.
	// Start assigns a request ID unless the caller already set one.
	Sync = action.MakeLifecycleWithEffects("todolist/sync", action.LifecycleEffects[SyncRequest, SyncResult, SyncFailure]{
		Start: func(req SyncRequest) SyncRequest {
			if req.RequestID == uuid.Nil {
				req.RequestID = uuid.New()
			}

			return req
		},
	})
)

// NewDecoder returns a decoder for all actions of this feature.
func NewDecoder() *action.Decoder {
	dec := action.NewDecoder()
	action.Register(dec, ItemAdded)
	action.Register(dec, ItemToggled)
	action.Register(dec, ItemRemoved)
	action.RegisterLifecycle(dec, Sync)

	return dec
}
