package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Resolution outcomes recorded by MetricsRecorder.
const (
	OutcomeHit     = "hit"     // served from a ready instance
	OutcomeBuilt   = "built"   // a factory ran and its result was memoized
	OutcomeMissing = "missing" // no usable entry
	OutcomeFailed  = "failed"  // the factory returned an error
)

// MeterName is the instrumentation scope used for container metrics.
const MeterName = "github.com/sghaida/typereg"

// MetricsRecorder records container metrics.
// Use NewMetricsRecorder for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolution records one resolution of key with its outcome.
	RecordResolution(ctx context.Context, key string, outcome string)

	// RecordFactory records one factory invocation with its duration and error status.
	RecordFactory(ctx context.Context, key string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolutions     metric.Int64Counter
	factoryCalls    metric.Int64Counter
	factoryErrors   metric.Int64Counter
	factoryDuration metric.Float64Histogram
}

func newOtelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	meter := mp.Meter(MeterName)

	resolutions, err := meter.Int64Counter("typereg.resolutions",
		metric.WithDescription("Number of resolutions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	factoryCalls, err := meter.Int64Counter("typereg.factory.calls",
		metric.WithDescription("Number of factory invocations"),
	)
	if err != nil {
		return nil, err
	}

	factoryErrors, err := meter.Int64Counter("typereg.factory.errors",
		metric.WithDescription("Number of factory invocations that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	factoryDuration, err := meter.Float64Histogram("typereg.factory.duration_ms",
		metric.WithDescription("Factory latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolutions:     resolutions,
		factoryCalls:    factoryCalls,
		factoryErrors:   factoryErrors,
		factoryDuration: factoryDuration,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by mp.
// A nil mp means the global OTel meter provider. If instrument creation
// fails, a no-op recorder is returned.
func NewMetricsRecorder(mp metric.MeterProvider) MetricsRecorder {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m, err := newOtelMetrics(mp)
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolution records a resolution.
func (m *otelMetrics) RecordResolution(ctx context.Context, key string, outcome string) {
	m.resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
		attribute.String("outcome", outcome),
	))
}

// RecordFactory records a factory invocation.
func (m *otelMetrics) RecordFactory(ctx context.Context, key string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("key", key))

	m.factoryCalls.Add(ctx, 1, attrs)
	m.factoryDuration.Record(ctx, Milliseconds(duration), attrs)
	if err != nil {
		m.factoryErrors.Add(ctx, 1, attrs)
	}
}
