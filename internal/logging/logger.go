package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name (trace, debug, info, warn, error,
// fatal, disabled) to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

// ConfigFrom builds a Config from textual settings, ignoring invalid values.
func ConfigFrom(level, format string) Config {
	cfg := DefaultConfig()
	if lvl, err := ParseLevel(level); err == nil {
		cfg.Level = lvl
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

// ApplyEnv overrides cfg from environment variables:
// PANEMUX_LOG_LEVEL: trace, debug, info, warn, error
// PANEMUX_LOG_FORMAT: json, console
func ApplyEnv(cfg Config) Config {
	if level := os.Getenv("PANEMUX_LOG_LEVEL"); level != "" {
		if lvl, err := ParseLevel(level); err == nil {
			cfg.Level = lvl
		}
	}
	if format := os.Getenv("PANEMUX_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}
	return cfg
}

// NewFromEnv creates a logger based on environment variables only.
func NewFromEnv() zerolog.Logger {
	return New(ApplyEnv(DefaultConfig()))
}
