package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pyrelgen/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor and reports every ended span through a logger.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its attributes.
// Failed spans are reported as warnings; the error itself is reported by the caller.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	var sb strings.Builder
	sb.WriteString(s.Name())
	if s.Status().Code == codes.Error {
		sb.WriteString(" failed after ")
	} else {
		sb.WriteString(" took ")
	}
	sb.WriteString(elapsed.String())
	for _, kv := range s.Attributes() {
		sb.WriteString(" ")
		sb.WriteString(string(kv.Key))
		sb.WriteString("=")
		sb.WriteString(kv.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn(sb.String())
		return
	}
	b.logger.Info(sb.String())
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}
