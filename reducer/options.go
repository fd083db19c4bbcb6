package reducer

import (
	"fmt"
	"time"
)

// Logger interface for reducer lifecycle logging, satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting reducer operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// Option defines a functional option for configuring a reducer.
type Option func(*config) error

type config struct {
	name             string
	logger           Logger
	metricsCollector MetricsCollector
}

const defaultReducerName = "reducer"

func buildConfig(opts ...Option) config {
	cfg := config{name: defaultReducerName}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			panic(fmt.Errorf("building reducer: %w", err))
		}
	}

	return cfg
}

// WithName sets the name of the reducer, used as the "reducer" attribute in logs and metrics.
func WithName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return ErrEmptyReducerName
		}

		cfg.name = name

		return nil
	}
}

// WithLogger sets the logger for the reducer.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: initialization, handled and ignored actions (development use)
// Error level: payload type mismatches, logged right before the reducer panics.
func WithLogger(logger Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the reducer.
// The collector will receive initialization and action counters and handler durations.
func WithMetrics(collector MetricsCollector) Option {
	return func(cfg *config) error {
		cfg.metricsCollector = collector
		return nil
	}
}
