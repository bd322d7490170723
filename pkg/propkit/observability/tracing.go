package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the propkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("propkit")

// SpanManager handles trace span lifecycle around resolution phases.
// The resolver itself is synchronous and in-memory, so spans are meant for
// callers that resolve many properties as part of a larger traced operation
// (settings load, scanner bootstrap). Use NewSpanManager() for OTel tracing
// or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartResolveSpan starts a span for resolving one property.
	// method is the accessor used ("Get", "GetStringArray", ...).
	StartResolveSpan(ctx context.Context, key, method string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartResolveSpan starts a span for resolving one property.
func (m *otelSpanManager) StartResolveSpan(ctx context.Context, key, method string) (context.Context, trace.Span) {
	return StartResolveSpan(ctx, key, method)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartResolveSpan starts a span for resolving one property.
// Uses the global OTel tracer.
func StartResolveSpan(ctx context.Context, key, method string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "propkit.resolve",
		trace.WithAttributes(
			attribute.String("property", key),
			attribute.String("method", method),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
