package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/pyrelgen/internal/core/ports"
)

// NewProvider returns the tracer provider for a run.
// When tracing is disabled spans are dropped without being recorded.
func NewProvider(enabled bool, logger ports.Logger) trace.TracerProvider {
	if !enabled {
		return noop.NewTracerProvider()
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
}
