package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

// RunIDContextKey is the key for storing the batch run ID in context.
const RunIDContextKey contextKey = "run_id"

// NewRunID generates a unique identifier for one batch run.
func NewRunID() string {
	return uuid.New().String()
}

// ContextWithRunID returns a context carrying a freshly generated run ID.
func ContextWithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RunIDContextKey, NewRunID())
}

// RunIDFromContext extracts the run ID, or "" when none was set.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDContextKey).(string); ok {
		return id
	}
	return ""
}

// LoggerWithContext returns a logger that tags every record with the run ID
// from the context. This is the preferred way to get a logger inside the
// batch flow.
func LoggerWithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := RunIDFromContext(ctx); id != "" {
		return logger.With("run_id", id)
	}
	return logger
}
