// Package testdoubles provides test doubles (spies) for the reducer observability interfaces.
//
// This package contains spy implementations for:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - LogHandlerSpy: captures slog handler calls and attributes
//
// These test doubles enable testing of reducer instrumentation without requiring actual telemetry backends.
package testdoubles
