package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithContext(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)

	ctx := WithContext(context.Background(), logger)

	assert.NotNil(t, FromContext(ctx))
}

func TestFromContext_NotFound(t *testing.T) {
	// Falls back to a no-op logger
	logger := FromContext(context.Background())
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Info("test message")
		logger.With(zap.String("key", "value")).Warn("with field")
	})
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")

	assert.NotNil(t, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.NotNil(t, enriched)

	// The logger stored in context is the enriched one
	assert.Equal(t, enriched, FromContext(ctx))
}

func TestWithRequestID_Override(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)

	ctx, _ := WithRequestID(context.Background(), logger, "first-id")
	ctx, _ = WithRequestID(ctx, logger, "second-id")

	assert.Equal(t, "second-id", GetRequestID(ctx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
