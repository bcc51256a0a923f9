package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledReturnsNoopTracer(t *testing.T) {
	tracer, shutdown, err := Setup(context.Background(), DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "test")
	assert.False(t, span.SpanContext().IsValid(), "noop spans carry no context")
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.ZipkinURL = "http://127.0.0.1:1/api/v2/spans"

	tracer, shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "test")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	// Nothing is listening; shutdown must still return.
	_ = shutdown(context.Background())
}

func TestSetup_InvalidURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.ZipkinURL = "://bad"

	_, _, err := Setup(context.Background(), cfg)
	assert.Error(t, err)
}
