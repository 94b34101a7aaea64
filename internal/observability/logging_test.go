package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/liminal/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, "liminal")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "console"}, "liminal")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "trace", Format: "json"}, "liminal")
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "info", Format: "xml"}, "liminal")
	assert.Error(t, err)
}

func TestNewLogger_LevelApplied(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, "liminal")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel), "debug disabled at warn")
	assert.True(t, logger.Core().Enabled(zap.WarnLevel), "warn enabled at warn")
}

func teeInto(core zapcore.Core) zap.Option {
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	})
}

func TestNewLogger_ServiceField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, "liminal-import", teeInto(core))
	require.NoError(t, err)

	logger.Info("import complete", zap.Int("rooms", 9))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "liminal-import", fields["service"])
	assert.EqualValues(t, 9, fields["rooms"])
}

func TestNewLogger_NoServiceField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "console"}, "", teeInto(core))
	require.NoError(t, err)

	logger.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "service")
}
