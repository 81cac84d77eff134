package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for container spans.
const TracerName = "github.com/sghaida/typereg"

// SpanManager handles the span lifecycle around factory invocations.
// Use NewSpanManager for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartFactorySpan starts a span for one factory invocation. When ctx
	// already carries a factory span (a factory resolving its own
	// dependencies) the new span is its child.
	StartFactorySpan(ctx context.Context, containerID, key string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager backed by tp.
// A nil tp means the global OTel tracer provider.
func NewSpanManager(tp trace.TracerProvider) SpanManager {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &otelSpanManager{tracer: tp.Tracer(TracerName)}
}

// StartFactorySpan starts a span named "typereg.factory".
func (m *otelSpanManager) StartFactorySpan(ctx context.Context, containerID, key string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "typereg.factory",
		trace.WithAttributes(
			attribute.String("container.id", containerID),
			attribute.String("entry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
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
