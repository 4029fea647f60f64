package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/clubops/club-manager/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(slog.NewTextHandler(&buf, nil)))

	ctx := middleware.NewContextWithCorrelationID(context.Background(), "abc-123")
	logger.InfoContext(ctx, "hello")

	require.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "correlationId=abc-123")
}

func TestContextHandler_NoCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(slog.NewTextHandler(&buf, nil)))

	logger.Info("hello")

	require.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "correlationId")
}
