// Package oteladapters provides OpenTelemetry adapters for the reducer observability interfaces.
//
// It lives in its own module so the reducers-go core stays free of OpenTelemetry dependencies.
//
//	meter := otel.Meter("todolist")
//	r := reducer.Assemble(handlers, initial,
//		reducer.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		reducer.WithLogger(oteladapters.NewSlogBridgeLogger("todolist")),
//	)
package oteladapters
