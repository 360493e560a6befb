package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "CITYDRIFT_GEMINI_MODEL", "CITYDRIFT_EVENTS_FILE",
		"CITYDRIFT_LOG_FILE", "CITYDRIFT_LOG_LEVEL", "CITYDRIFT_SEED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.EventsFile)
	assert.Equal(t, "citydrift.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("CITYDRIFT_EVENTS_FILE", "/tmp/events.yaml")
	t.Setenv("CITYDRIFT_LOG_LEVEL", "debug")
	t.Setenv("CITYDRIFT_SEED", "42")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "/tmp/events.yaml", cfg.EventsFile)
	assert.Equal(t, uint64(42), cfg.Seed)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("CITYDRIFT_SEED", "not-a-number")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	clearEnv(t)
	t.Setenv("CITYDRIFT_LOG_LEVEL", "loud")
	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CITYDRIFT_LOG_LEVEL")
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := (&Config{LogLevel: "warn"}).NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "stage", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown stage=2")
}
