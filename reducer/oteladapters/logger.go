package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/reducers-go/reducer"
)

// NewSlogBridgeLogger creates a reducer.Logger backed by the OpenTelemetry slog bridge.
// The logger uses the global OpenTelemetry LoggerProvider.
func NewSlogBridgeLogger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}

// NewSlogBridgeLoggerWithProvider creates a reducer.Logger backed by the OpenTelemetry slog bridge
// which emits to the given LoggerProvider instead of the global one.
func NewSlogBridgeLoggerWithProvider(name string, provider log.LoggerProvider) *slog.Logger {
	return otelslog.NewLogger(name, otelslog.WithLoggerProvider(provider))
}

// OTelLogger implements reducer.Logger using the OpenTelemetry logging API directly.
// Use this if you need direct control over OpenTelemetry log records.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a new logger using the OpenTelemetry logging API directly.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// Debug logs a debug message.
func (l *OTelLogger) Debug(msg string, args ...any) {
	l.emit(log.SeverityDebug, msg, args...)
}

// Info logs an info message.
func (l *OTelLogger) Info(msg string, args ...any) {
	l.emit(log.SeverityInfo, msg, args...)
}

// Warn logs a warning message.
func (l *OTelLogger) Warn(msg string, args ...any) {
	l.emit(log.SeverityWarn, msg, args...)
}

// Error logs an error message.
func (l *OTelLogger) Error(msg string, args ...any) {
	l.emit(log.SeverityError, msg, args...)
}

// emit creates and emits an OpenTelemetry log record with the specified severity.
// Args come in key-value pairs like slog, a trailing key without value is dropped.
func (l *OTelLogger) emit(severity log.Severity, msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			record.AddAttributes(toLogKeyValue(key, args[i+1]))
		}
	}

	l.logger.Emit(context.Background(), record)
}

func toLogKeyValue(key string, value any) log.KeyValue {
	switch v := value.(type) {
	case string:
		return log.String(key, v)
	case int:
		return log.Int(key, v)
	case int64:
		return log.Int64(key, v)
	case float64:
		return log.Float64(key, v)
	case bool:
		return log.Bool(key, v)
	default:
		return log.String(key, slog.AnyValue(v).String())
	}
}

// Ensure the adapters implement reducer.Logger.
var (
	_ reducer.Logger = (*OTelLogger)(nil)
	_ reducer.Logger = (*slog.Logger)(nil)
)
