// Package counter is the smallest example feature: an integer incremented and decremented by actions.
package counter

import (
	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/reducer"
)

var (
	Incremented = action.Make[int]("inc")
	Decremented = action.Make[int]("dec")
)

// NewReducer builds the counter reducer, starting at 0.
func NewReducer(opts ...reducer.Option) reducer.Reducer[int] {
	return reducer.Assemble(
		[]reducer.Handlers[int]{
			reducer.Associate(Incremented, func(count, by int) int { return count + by }),
			reducer.Associate(Decremented, func(count, by int) int { return count - by }),
		},
		0,
		opts...,
	)
}
