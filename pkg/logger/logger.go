package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide structured logger. It is usable before Init so
// packages can log during early startup failures.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the JSON logger. The level comes from LOG_LEVEL
// (debug, info, warn, error) and defaults to info.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
	Log = slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
