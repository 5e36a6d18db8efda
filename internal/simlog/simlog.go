// Package simlog provides the zerolog setup shared across the simulation
// core's packages, mirroring the logging conventions used by the teacher's
// internal/logging package.
package simlog

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type correlationIDKey struct{}

// New builds a zerolog.Logger. In "console" mode output is human-readable;
// any other mode string produces JSON output suitable for production. An
// unparseable level falls back to info.
func New(level, mode string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if mode == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return logger.Level(lvl)
}

// WithCorrelationID returns a context carrying id for later retrieval by
// FromContext, and a logger with the id attached as a field.
func WithCorrelationID(ctx context.Context, logger zerolog.Logger, id uuid.UUID) (context.Context, zerolog.Logger) {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	logger = logger.With().Str("correlation_id", id.String()).Logger()
	return ctx, logger
}

// CorrelationID retrieves the correlation id stashed by WithCorrelationID,
// minting a fresh one if the context carries none.
func CorrelationID(ctx context.Context) uuid.UUID {
	if v, ok := ctx.Value(correlationIDKey{}).(uuid.UUID); ok {
		return v
	}
	return uuid.New()
}
