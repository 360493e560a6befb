package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the Gemini narrator when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"CITYDRIFT_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// EventsFile replaces the built-in event catalog.
	EventsFile string `env:"CITYDRIFT_EVENTS_FILE"`

	LogFile  string `env:"CITYDRIFT_LOG_FILE" envDefault:"citydrift.log"`
	LogLevel string `env:"CITYDRIFT_LOG_LEVEL" envDefault:"info"`

	// Seed makes runs reproducible. Zero means unseeded.
	Seed uint64 `env:"CITYDRIFT_SEED" envDefault:"0"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("CITYDRIFT_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
