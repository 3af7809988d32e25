package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses DEBUG, INFO, WARN or ERROR, case insensitive. Empty means INFO.
func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToUpper(value) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", value)
	}
}

// NewLogger creates a logger writing to w. Format is "text" or "json", empty means text.
func NewLogger(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	options := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, options)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, options)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %q", format)
	}
}

// SetLogLevel sets the default logger from LOG_LEVEL and LOG_FORMAT. Logs go to stderr,
// so the play command can use stdout for the board.
func SetLogLevel() {
	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		slog.Error("Invalid log level", "level", os.Getenv("LOG_LEVEL"))
		os.Exit(1)
	}

	logger, err := NewLogger(os.Stderr, level, os.Getenv("LOG_FORMAT"))
	if err != nil {
		slog.Error("Invalid log format", "format", os.Getenv("LOG_FORMAT"))
		os.Exit(1)
	}

	slog.SetDefault(logger)
}
