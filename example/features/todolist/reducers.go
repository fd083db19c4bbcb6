package todolist

import (
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/reducers-go/reducer"
)

// ListHandlers returns the handler mappings of the list reducer.
func ListHandlers() []reducer.Handlers[List] {
	return []reducer.Handlers[List]{
		reducer.Associate(ItemAdded, addItem),
		reducer.Associate(ItemToggled, toggleItem),
		reducer.Associate(ItemRemoved, removeItem),
		reducer.Associate(Sync.Success, replaceItems),
	}
}

// NewListReducer builds the full-replace reducer of the todo list.
func NewListReducer(opts ...reducer.Option) reducer.Reducer[List] {
	return reducer.Assemble(ListHandlers(), List{Items: []Item{}}, opts...)
}

// StatusHandlers returns the handler mappings of the sync status reducer.
func StatusHandlers() []reducer.PartialHandlers[Status] {
	return []reducer.PartialHandlers[Status]{
		reducer.AssociatePartial(Sync.Start, func(_ Status, req SyncRequest) Status {
			return Status{
				StatusPhase:     PhaseSyncing,
				StatusRequestID: req.RequestID.String(),
				StatusRemote:    req.Remote,
				StatusError:     "",
			}
		}),
		reducer.AssociatePartial(Sync.Success, func(_ Status, res SyncResult) Status {
			return Status{
				StatusPhase:  PhaseSynced,
				StatusSynced: len(res.Items),
			}
		}),
		reducer.AssociatePartial(Sync.Fail, func(_ Status, failure SyncFailure) Status {
			return Status{
				StatusPhase: PhaseFailed,
				StatusError: failure.Reason,
			}
		}),
	}
}

// NewStatusReducer builds the shallow-merge-append reducer of the sync status.
func NewStatusReducer(opts ...reducer.Option) reducer.Reducer[Status] {
	return reducer.AssembleAppend(StatusHandlers(), InitialStatus(), opts...)
}

func addItem(list List, item Item) List {
	return List{Items: append(slices.Clip(list.Items), item)}
}

func toggleItem(list List, id uuid.UUID) List {
	idx := slices.IndexFunc(list.Items, func(item Item) bool { return item.ID == id })
	if idx < 0 {
		return list
	}

	items := slices.Clone(list.Items)
	items[idx].Done = !items[idx].Done

	return List{Items: items}
}

func removeItem(list List, id uuid.UUID) List {
	return List{Items: slices.DeleteFunc(slices.Clone(list.Items), func(item Item) bool { return item.ID == id })}
}

func replaceItems(_ List, res SyncResult) List {
	return List{Items: slices.Clone(res.Items)}
}
