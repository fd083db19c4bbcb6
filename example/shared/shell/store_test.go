package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/example/shared/shell"
	"github.com/AntonStoeckl/reducers-go/reducer"
)

func Test_Store_InitializesWithSentinelOnce(t *testing.T) {
	var received []*int
	var actionTypes []string

	inc := action.Make[int]("inc")
	handled := reducer.Build(reducer.Associate(inc, func(s, p int) int { return s + p }), 3)
	spy := func(state *int, a action.Dispatchable) *int {
		received = append(received, state)
		actionTypes = append(actionTypes, a.ActionType())
		return handled(state, a)
	}

	store := shell.NewStore[int](spy)
	store.Dispatch(inc.Create(1))
	store.Dispatch(inc.Create(1))

	require.Len(t, received, 3)
	assert.Nil(t, received[0], "only the first call receives the nil sentinel")
	assert.NotNil(t, received[1])
	assert.NotNil(t, received[2])
	assert.Equal(t, []string{shell.InitActionType, "inc", "inc"}, actionTypes)
	assert.Equal(t, 5, *store.State())
}

func Test_Store_NotifiesOnlyOnChange(t *testing.T) {
	inc := action.Make[int]("inc")
	unknown := action.Make[int]("unknown")

	store := shell.NewStore(reducer.Build(reducer.Associate(inc, func(s, p int) int { return s + p }), 0))

	var notified []int
	store.Subscribe(func(state *int) { notified = append(notified, *state) })

	assert.True(t, store.Dispatch(inc.Create(2)))
	assert.False(t, store.Dispatch(unknown.Create(2)))
	assert.True(t, store.Dispatch(inc.Create(3)))

	assert.Equal(t, []int{2, 5}, notified)
}
