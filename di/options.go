package di

import (
	"log/slog"

	"github.com/sghaida/typereg/observability"
)

// Ordering selects the order in which ResolveAllSpecialized and
// Specializations visit known discriminant values.
type Ordering int

const (
	// OrderByValue visits discriminants in ascending integer order.
	OrderByValue Ordering = iota
	// OrderByRegistration visits discriminants in the order they were first registered.
	OrderByRegistration
)

// String returns the ordering name as used in configuration files.
func (o Ordering) String() string {
	switch o {
	case OrderByValue:
		return "value"
	case OrderByRegistration:
		return "registration"
	default:
		return "unknown"
	}
}

// ParseOrdering is the inverse of Ordering.String.
func ParseOrdering(s string) (Ordering, bool) {
	switch s {
	case "value", "":
		return OrderByValue, true
	case "registration":
		return OrderByRegistration, true
	default:
		return 0, false
	}
}

// Options control container behavior.
type Options struct {
	// Name labels the container in logs. Defaults to "default".
	Name string

	// Ordering applies to enumeration of specializations.
	Ordering Ordering

	// Logger receives registration and resolution records. If nil,
	// records are discarded.
	Logger *slog.Logger

	// Metrics and Spans default to no-op implementations.
	Metrics observability.MetricsRecorder
	Spans   observability.SpanManager
}

// Option modifies Options.
type Option func(*Options)

// WithName sets the container name.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithOrdering sets the enumeration order.
func WithOrdering(ord Ordering) Option { return func(o *Options) { o.Ordering = ord } }

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithSpans sets the span manager used around factory invocations.
func WithSpans(s observability.SpanManager) Option {
	return func(o *Options) { o.Spans = s }
}
