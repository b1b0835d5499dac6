package tracing_test

import (
	"context"
	"testing"

	"go-onboarding/internal/config"
	"go-onboarding/internal/shared/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := tracing.InitTracing(context.Background(), config.TracingConfig{}, "test", zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Enabled(t *testing.T) {
	cfg := config.TracingConfig{
		Enabled:     true,
		ServiceName: "go-onboarding-test",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		SamplerRate: 2,
	}

	shutdown, err := tracing.InitTracing(context.Background(), cfg, "test", zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
