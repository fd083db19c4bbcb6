// Package config provides environment based configuration for the example programs.
//
// This package is part of the shell (infrastructure) layer. It reads the log level, log format,
// and reducer name from environment variables and builds the slog logger handed to the reducers.
package config
