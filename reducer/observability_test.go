package reducer_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/reducer"
	"github.com/AntonStoeckl/reducers-go/testutil/observability/testdoubles"
)

func Test_Reducer_WithLogger_LogsLifecycle(t *testing.T) {
	logHandler := testdoubles.NewLogHandlerSpy(false)
	unknown := action.Make[int]("unknown")

	counter := reducer.Assemble(
		counterHandlers(),
		0,
		reducer.WithName("counter"),
		reducer.WithLogger(slog.New(logHandler)),
	)

	assert.True(t, logHandler.HasDebugLogWithMessage("reducer: built").
		WithAttr("reducer", "counter").
		WithAttr("strategy", "replace").
		Assert())

	state := counter(nil, inc.Create(0))
	assert.True(t, logHandler.HasDebugLogWithMessage("reducer: state initialized").
		WithAttr("reducer", "counter").
		WithAttr("action_type", "inc").
		Assert())

	state = counter(state, inc.Create(1))
	assert.True(t, logHandler.HasDebugLogWithMessage("reducer: action handled").
		WithAttr("action_type", "inc").
		WithDurationMS().
		Assert())

	counter(state, unknown.Create(1))
	assert.True(t, logHandler.HasDebugLogWithMessage("reducer: action ignored, no handler").
		WithAttr("action_type", "unknown").
		Assert())

	assert.Equal(t, 4, logHandler.GetRecordCount())
}

func Test_Reducer_WithLogger_LogsHandlerPanic(t *testing.T) {
	logHandler := testdoubles.NewLogHandlerSpy(false)

	counter := reducer.Assemble(counterHandlers(), 0, reducer.WithLogger(slog.New(logHandler)))
	state := counter(nil, inc.Create(0))

	assert.Panics(t, func() {
		counter(state, action.Action[string]{Type: "inc", Payload: "ten"})
	})

	assert.True(t, logHandler.HasErrorLogWithMessage("reducer: handler panicked").
		WithAttr("reducer", "reducer").
		WithAttr("action_type", "inc").
		Assert())
}

func Test_Reducer_WithMetrics(t *testing.T) {
	metrics := testdoubles.NewMetricsCollectorSpy()
	unknown := action.Make[int]("unknown")

	counter := reducer.Assemble(
		counterHandlers(),
		0,
		reducer.WithName("counter"),
		reducer.WithMetrics(metrics),
	)

	valueRecords := metrics.GetValueRecords()
	require.Len(t, valueRecords, 1)
	assert.Equal(t, "reducer_handlers", valueRecords[0].Metric)
	assert.InDelta(t, 2.0, valueRecords[0].Value, 0)
	assert.Equal(t, map[string]string{"reducer": "counter", "strategy": "replace"}, valueRecords[0].Labels)

	state := counter(nil, inc.Create(0))
	state = counter(state, inc.Create(1))
	state = counter(state, dec.Create(1))
	counter(state, unknown.Create(1))

	assert.Equal(t, 1, metrics.CountCounterRecords("reducer_initializations_total", map[string]string{"reducer": "counter"}))
	assert.Equal(t, 2, metrics.CountCounterRecords("reducer_actions_total", map[string]string{"outcome": "handled"}))
	assert.Equal(t, 1, metrics.CountCounterRecords("reducer_actions_total", map[string]string{
		"reducer":     "counter",
		"action_type": "unknown",
		"outcome":     "ignored",
	}))

	assert.True(t, metrics.HasDurationRecord("reducer_handle_duration_seconds", map[string]string{"action_type": "inc"}))
	assert.True(t, metrics.HasDurationRecord("reducer_handle_duration_seconds", map[string]string{"action_type": "dec"}))
	assert.Len(t, metrics.GetDurationRecords(), 2)
}

func Test_ReducerAppend_WithMetrics(t *testing.T) {
	metrics := testdoubles.NewMetricsCollectorSpy()
	set := action.Make[int]("t")

	r := reducer.BuildAppend(
		reducer.AssociatePartial(set, func(_ map[string]int, p int) map[string]int { return map[string]int{"a": p} }),
		map[string]int{},
		reducer.WithMetrics(metrics),
	)

	state := r(nil, set.Create(0))
	r(state, set.Create(1))

	valueRecords := metrics.GetValueRecords()
	require.Len(t, valueRecords, 1)
	assert.Equal(t, "append", valueRecords[0].Labels["strategy"])
	assert.Equal(t, 1, metrics.CountCounterRecords("reducer_actions_total", map[string]string{
		"reducer":     "reducer",
		"action_type": "t",
		"outcome":     "handled",
	}))
}
