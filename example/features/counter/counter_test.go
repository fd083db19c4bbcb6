package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/reducers-go/example/features/counter"
	"github.com/AntonStoeckl/reducers-go/example/shared/shell"
)

func Test_Counter_IncThenDec(t *testing.T) {
	store := shell.NewStore(counter.NewReducer())

	store.Dispatch(counter.Incremented.Create(10))
	store.Dispatch(counter.Decremented.Create(5))

	assert.Equal(t, 5, *store.State())
}

func Test_Counter_StartsAtZero(t *testing.T) {
	r := counter.NewReducer()

	assert.Equal(t, 0, *r(nil, counter.Decremented.Create(100)))
}
