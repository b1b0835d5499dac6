package contextutil_test

import (
	"context"
	"testing"

	"go-onboarding/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func TestMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithRole(ctx, "hr")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Equal(t, "hr", md.Role)
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))

	scoped := zap.NewExample()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))

	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, contextutil.GetTraceID(context.Background()))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", contextutil.GetTraceID(ctx))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", contextutil.ExtractMetadata(ctx).TraceID)
}
