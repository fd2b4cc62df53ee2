package infrastructure

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextWithRunID(t *testing.T) {
	ctx := ContextWithRunID(context.Background())

	id := RunIDFromContext(ctx)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "run IDs are UUIDs")
}

func TestRunIDFromContextWithoutID(t *testing.T) {
	assert.Empty(t, RunIDFromContext(context.Background()))
}

func TestLoggerWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := ContextWithRunID(context.Background())
	LoggerWithContext(ctx, logger).Info("hello")

	assert.Contains(t, buf.String(), `"run_id":"`+RunIDFromContext(ctx)+`"`)
}

func TestLoggerWithContextNoRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	LoggerWithContext(context.Background(), logger).Info("hello")

	assert.NotContains(t, buf.String(), "run_id")
}
