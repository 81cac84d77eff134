// Package observability provides the logging, metrics and tracing hooks the
// container reports through.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// EnrichLogger adds container identity to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "3f1c...", "app")
//	enriched.Info("ready") // includes container_id, container
func EnrichLogger(logger *slog.Logger, containerID, name string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("container_id", containerID),
		slog.String("container", name),
	)
}

// LogRegistered logs a registration.
func LogRegistered(logger *slog.Logger, key, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("entry registered",
		slog.String("key", key),
		slog.String("kind", kind),
	)
}

// LogResolved logs a resolution served from a ready instance.
func LogResolved(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("entry resolved",
		slog.String("key", key),
	)
}

// LogMissing logs a resolution that found no usable entry.
func LogMissing(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("entry missing",
		slog.String("key", key),
	)
}

// LogFactoryStart logs a factory invocation.
func LogFactoryStart(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("factory starting",
		slog.String("key", key),
	)
}

// LogFactoryComplete logs a factory that produced an instance.
func LogFactoryComplete(logger *slog.Logger, key string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("factory completed",
		slog.String("key", key),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFactoryError logs a factory failure. The entry stays unrealized.
func LogFactoryError(logger *slog.Logger, key string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("factory failed",
		slog.String("key", key),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log attributes.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
