package cli

import (
	"io"
	"log/slog"
	"strings"
)

// logger is replaced by initLogger once flags are known.
var logger = slog.Default()

// initLogger installs a text handler on w as the process default logger.
// Diagnostics go to stderr so stdout stays parseable.
func initLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
