package config

import (
	"log/slog"
	"os"
	"strings"
)

const serviceName = "aquapure"

// NewLogger builds the JSON logger used across the service.
func (c LoggerConfig) NewLogger(env string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(c.Level),
	})

	return slog.New(handler).With(
		"service", serviceName,
		"env", env,
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
