package logger

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/daybreak/internal/config"
)

// Setup configures the global slog logger based on environment
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithCharacter scopes logger to one character
func WithCharacter(logger *slog.Logger, characterID string) *slog.Logger {
	return logger.With("character_id", characterID)
}
