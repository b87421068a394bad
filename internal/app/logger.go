package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// Attribute keys whose values never reach the log output.
var redactedKeys = map[string]bool{
	"password":      true,
	"access_token":  true,
	"refresh_token": true,
	"api_key":       true,
	"authorization": true,
	"reset_url":     true,
}

const redacted = "[REDACTED]"

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Format "json" is for production; anything else gives the text
// handler with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !strings.EqualFold(cfg.Format, "json"),
		ReplaceAttr: redact,
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
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
