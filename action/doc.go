// Package action builds the tagged action values consumed by reducers.
//
// An action is a discriminator (its "type") plus a payload. Actions are produced
// by a Constructor, which is bound once to a discriminator and to an Effect that
// turns the constructor's input into the payload.
//
// Key types:
//   - Action: the immutable {Type, Payload} value
//   - Dispatchable: the payload-agnostic view of an action that reducers accept
//   - Constructor: builds actions of one type, exposes its discriminator via Type()
//   - Lifecycle: the start/success/fail constructor triplet of one asynchronous operation
//   - Decoder: turns the JSON wire form of an action back into a Dispatchable
//
// Common usage pattern:
//
//	var (
//		ItemAdded = action.MakeWithEffect("todolist/add", func(title string) Item {
//			return Item{ID: uuid.New(), Title: title}
//		})
//		Sync = action.MakeLifecycle[SyncRequest, SyncResult, SyncFailure]("todolist/sync")
//	)
//
//	a := ItemAdded.Create("buy milk") // a.Type == "todolist/add"
//	s := Sync.Success.Create(result)  // s.Type == "todolist/sync:success"
package action
