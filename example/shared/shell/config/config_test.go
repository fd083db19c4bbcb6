package config_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/reducers-go/example/shared/shell/config"
)

func Test_LoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadConfigFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.Config{LogLevel: "info", LogFormat: "text", ReducerName: "todolist"}, cfg)
}

func Test_LoadConfigFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadConfigFrom(map[string]string{
		"TODOLIST_LOG_LEVEL":    "debug",
		"TODOLIST_LOG_FORMAT":   "json",
		"TODOLIST_REDUCER_NAME": "todos",
	})
	require.NoError(t, err)

	assert.Equal(t, config.Config{LogLevel: "debug", LogFormat: "json", ReducerName: "todos"}, cfg)
}

func Test_LoadConfigFrom_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		environment map[string]string
		expectedErr error
	}{
		{
			name:        "invalid log level",
			environment: map[string]string{"TODOLIST_LOG_LEVEL": "verbose"},
			expectedErr: config.ErrInvalidLogLevel,
		},
		{
			name:        "invalid log format",
			environment: map[string]string{"TODOLIST_LOG_FORMAT": "xml"},
			expectedErr: config.ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfigFrom(tt.environment)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_Config_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.Config{LogLevel: "warn", LogFormat: "json"}
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
