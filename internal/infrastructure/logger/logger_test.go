package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigs(t *testing.T) {
	t.Run("default is console to stdout", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "console", cfg.Format)
		assert.Equal(t, "stdout", cfg.Output)
		assert.NotEmpty(t, cfg.TimeFormat)
	})

	t.Run("production is json to stdout", func(t *testing.T) {
		cfg := ProductionConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "stdout", cfg.Output)
		assert.NotEmpty(t, cfg.TimeFormat)
	})
}

func TestNew(t *testing.T) {
	cases := map[string]*Config{
		"default":       DefaultConfig(),
		"production":    ProductionConfig(),
		"debug console": {Level: "debug", Format: "console", Output: "stdout", TimeFormat: "2006-01-02T15:04:05Z07:00"},
		"info json":     {Level: "info", Format: "json", Output: "stderr", TimeFormat: "2006-01-02T15:04:05Z07:00"},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			logger, err := New(cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewForEnvironment(t *testing.T) {
	// Unknown environments fall back to development settings
	for _, env := range []string{"development", "production", "staging"} {
		t.Run(env, func(t *testing.T) {
			logger, err := NewForEnvironment(env)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewFromAppConfig(t *testing.T) {
	t.Run("uses environment defaults when settings are empty", func(t *testing.T) {
		logger, err := NewFromAppConfig("production", "", "", "")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("overrides defaults with explicit settings", func(t *testing.T) {
		logger, err := NewFromAppConfig("development", "debug", "json", "stderr")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.level), "level %q", tt.level)
	}
}

func TestWithAndNamed(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	child := With(logger, zap.String("component", "people"))
	assert.NotNil(t, child)
	assert.NotEqual(t, logger, child)

	named := Named(logger, "auth")
	assert.NotNil(t, named)
	assert.NotEqual(t, logger, named)
}

func TestSync(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	// Syncing stdout may fail on some platforms; it just must not panic
	_ = Sync(logger)
}

func TestCreateWriter(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", "STDOUT"} {
		assert.NotNil(t, createWriter(output), "output %q", output)
	}

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.log")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		assert.NotNil(t, createWriter(path))
	})
}

func TestCreateEncoder(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := &Config{Level: "info", Format: format, Output: "stdout", TimeFormat: "2006-01-02T15:04:05Z07:00"}
		assert.NotNil(t, createEncoder(cfg), "format %q", format)
	}
}

// jsonCore builds a zap logger writing JSON into buf at the given level.
func jsonCore(buf *bytes.Buffer, level zapcore.Level) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buf),
		level,
	))
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonCore(&buf, zapcore.InfoLevel)

	logger.Info("person created", zap.Int64("person_id", 42))

	var output map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "person created", output["msg"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, float64(42), output["person_id"])
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := jsonCore(&buf, zapcore.DebugLevel)
	logger.Debug("debug message")
	assert.True(t, strings.Contains(buf.String(), "debug message"))

	buf.Reset()

	logger = jsonCore(&buf, zapcore.InfoLevel)
	logger.Debug("debug message")
	assert.False(t, strings.Contains(buf.String(), "debug message"))

	logger.Info("info message")
	assert.True(t, strings.Contains(buf.String(), "info message"))
}
