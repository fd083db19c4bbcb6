package shell

import (
	"sync"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/reducer"
)

// InitActionType is the type of the action a Store passes to its reducer together with the nil sentinel.
const InitActionType = "@@store/init"

var initAction = action.Make[struct{}](InitActionType)

// Subscriber is notified with the new state whenever a dispatch changed it.
type Subscriber[S any] func(state *S)

// Store holds the state of one reducer.
//
// A dispatch counts as a change when the reducer returns a different pointer than it was given,
// so actions without a handler never notify subscribers.
type Store[S any] struct {
	mu          sync.Mutex
	reduce      reducer.Reducer[S]
	state       *S
	subscribers []Subscriber[S]
}

// NewStore creates a Store and initializes its state by calling the reducer with the nil sentinel.
func NewStore[S any](r reducer.Reducer[S]) *Store[S] {
	return &Store[S]{
		reduce: r,
		state:  r(nil, initAction.Create(struct{}{})),
	}
}

// Dispatch runs the reducer for a and reports whether the state changed.
func (s *Store[S]) Dispatch(a action.Dispatchable) bool {
	s.mu.Lock()
	previous := s.state
	s.state = s.reduce(previous, a)
	current := s.state
	subscribers := s.subscribers
	s.mu.Unlock()

	if current == previous {
		return false
	}

	for _, notify := range subscribers {
		notify(current)
	}

	return true
}

// State returns the current state.
// Callers must treat it as read-only, reducers rely on states never being modified in place.
func (s *Store[S]) State() *S {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers fn to be notified of state changes.
func (s *Store[S]) Subscribe(fn Subscriber[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers[:len(s.subscribers):len(s.subscribers)], fn)
}
