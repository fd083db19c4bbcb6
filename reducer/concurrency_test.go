package reducer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/reducer"
)

func Test_Reducer_ConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	type tags = map[string]string

	tagged := action.MakeWithEffect("tagged", func(key string) tags {
		return tags{key: uuid.NewString()}
	})

	counter := reducer.Assemble(counterHandlers(), 0)
	labels := reducer.BuildAppend(
		reducer.AssociatePartial(tagged, func(_ tags, p tags) tags { return p }),
		tags{"base": "x"},
	)

	const workers = 16
	const dispatches = 200

	var group errgroup.Group

	for w := 0; w < workers; w++ {
		group.Go(func() error {
			state := counter(nil, nil)
			for i := 0; i < dispatches; i++ {
				state = counter(state, inc.Create(2))
				state = counter(state, dec.Create(1))
			}

			if *state != dispatches {
				return assert.AnError
			}

			labelState := labels(nil, nil)
			for i := 0; i < dispatches; i++ {
				labelState = labels(labelState, tagged.Create("k"))
			}

			if len(*labelState) != 2 || (*labelState)["base"] != "x" {
				return assert.AnError
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
}
