// Package tracing configures OpenTelemetry for the site.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of every span the site emits.
const TracerName = "lifeheroes"

// Config holds configuration for OpenTelemetry tracing.
type Config struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
	Version     string
}

// DefaultConfig returns tracing disabled with a local Zipkin collector.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		ServiceName: "lifeheroes",
		ZipkinURL:   "http://localhost:9411/api/v2/spans",
		Version:     "dev",
	}
}

// Setup initializes OpenTelemetry with a Zipkin exporter.
// When cfg.Enabled is false a no-op tracer is returned and nothing is exported.
// The returned shutdown function flushes pending spans.
func Setup(ctx context.Context, cfg Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(TracerName), func(context.Context) error { return nil }, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create zipkin exporter: %w", err)
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	slog.Info("Tracing enabled", "service", cfg.ServiceName, "zipkin_url", cfg.ZipkinURL)
	return tp.Tracer(TracerName), tp.Shutdown, nil
}
