package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrInvalidLogLevel is returned for a log level slog can't parse.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat is returned for a log format other than "text" or "json".
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrLoadingConfigFailed is returned when the environment can't be parsed.
	ErrLoadingConfigFailed = errors.New("loading config failed")
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the settings of the example programs.
type Config struct {
	LogLevel    string `env:"TODOLIST_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"TODOLIST_LOG_FORMAT" envDefault:"text"`
	ReducerName string `env:"TODOLIST_REDUCER_NAME" envDefault:"todolist"`
}

// LoadConfig reads the Config from the process environment.
func LoadConfig() (Config, error) {
	return load(env.Options{})
}

// LoadConfigFrom reads the Config from the given environment instead of the process environment.
func LoadConfigFrom(environment map[string]string) (Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}

	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

// NewLogger builds the slog logger described by the Config, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	switch c.LogFormat {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
}
