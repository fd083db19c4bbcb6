package todolist

import (
	"github.com/google/uuid"
)

// Item is one entry of the todo list.
type Item struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}

// List is the state of the list reducer.
// Handlers never modify Items in place, they always build a new slice.
type List struct {
	Items []Item `json:"items"`
}

// Open returns the number of items which are not done.
func (l List) Open() int {
	open := 0
	for _, item := range l.Items {
		if !item.Done {
			open++
		}
	}

	return open
}

// Status is the state of the sync status reducer.
type Status = map[string]any

// Status keys.
const (
	StatusPhase     = "phase"
	StatusRequestID = "request_id"
	StatusRemote    = "remote"
	StatusError     = "error"
	StatusSynced    = "synced_items"
)

// Sync phases.
const (
	PhaseIdle    = "idle"
	PhaseSyncing = "syncing"
	PhaseSynced  = "synced"
	PhaseFailed  = "failed"
)

// InitialStatus is the state of the status reducer before any sync.
func InitialStatus() Status {
	return Status{StatusPhase: PhaseIdle}
}
