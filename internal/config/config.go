// Package config provides application configuration from environment
// variables with sensible defaults. A .env file, if present, is
// loaded by main before this runs.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	// APIBaseURL is the Taday backend, e.g. https://taday-api.fly.dev.
	APIBaseURL string
	// DataDir is where the local cache database lives (default ~/.taday).
	DataDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		APIBaseURL: envOr("TADAY_API_URL", ""),
		DataDir:    envOr("TADAY_DATA_DIR", ""),
		LogLevel:   parseLevel(envOr("TADAY_LOG_LEVEL", "warn")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
