package logger_test

import (
	"os"
	"testing"

	logpkg "github.com/maxviazov/customers-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				TimeFormat:     "unix",
				Fields:         map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env",
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid output target",
			config: &logpkg.LoggerConfig{
				Env:          "prod",
				OutputTarget: "syslog",
			},
			expectError: true,
		},
		{
			name: "valid staging environment on stderr",
			config: &logpkg.LoggerConfig{
				Env:          "staging",
				Level:        "warn",
				OutputTarget: "stderr",
				Stacktrace:   true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "valid development environment without debug",
			config: &logpkg.LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "test environment defaults to info",
			config: &logpkg.LoggerConfig{
				Env: "test",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "production with extra fields and error level",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				Level:      "error",
				Fields:     map[string]interface{}{"customField": "customValue"},
				WithCaller: true,
			},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := logpkg.New(tc.config)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	cfg := &logpkg.LoggerConfig{}
	_, err := logpkg.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "customers-service", cfg.ServiceName)
	assert.True(t, cfg.Stacktrace)
}

func TestNew_DebugLogFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
	require.NoError(t, err)

	_, statErr := os.Stat(logpkg.DebugLogPath)
	assert.NoError(t, statErr)
}
