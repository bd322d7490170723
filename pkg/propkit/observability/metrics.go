package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Lookup sources, recorded as the "source" attribute on lookup counts.
const (
	SourceStore   = "store"
	SourceDefault = "default"
	SourceAbsent  = "absent"
)

// Mismatch kinds, recorded as the "kind" attribute on mismatch counts.
const (
	MismatchScalarAccess = "scalar_access" // multi-valued property read via Get
	MismatchArrayAccess  = "array_access"  // single-valued property read via GetStringArray
)

// MetricsRecorder records resolver metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records a property lookup and where its value came from.
	RecordLookup(ctx context.Context, key, source string)

	// RecordMismatch records an advisory declaration-mismatch warning.
	RecordMismatch(ctx context.Context, key, kind string)

	// RecordParseFailure records a multi-value parse failure.
	RecordParseFailure(ctx context.Context, key string)

	// RecordDecrypt records a codec decryption attempt and its outcome.
	RecordDecrypt(ctx context.Context, key string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups         metric.Int64Counter
	mismatches      metric.Int64Counter
	parseFailures   metric.Int64Counter
	decrypts        metric.Int64Counter
	decryptFailures metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("propkit")

	lookups, err := meter.Int64Counter("propkit.lookups",
		metric.WithDescription("Number of property lookups"),
	)
	if err != nil {
		return nil, err
	}

	mismatches, err := meter.Int64Counter("propkit.mismatch_warnings",
		metric.WithDescription("Number of declaration-mismatch warnings emitted"),
	)
	if err != nil {
		return nil, err
	}

	parseFailures, err := meter.Int64Counter("propkit.parse_failures",
		metric.WithDescription("Number of multi-value parse failures"),
	)
	if err != nil {
		return nil, err
	}

	decrypts, err := meter.Int64Counter("propkit.decrypts",
		metric.WithDescription("Number of codec decryption attempts"),
	)
	if err != nil {
		return nil, err
	}

	decryptFailures, err := meter.Int64Counter("propkit.decrypt_failures",
		metric.WithDescription("Number of codec decryption failures"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:         lookups,
		mismatches:      mismatches,
		parseFailures:   parseFailures,
		decrypts:        decrypts,
		decryptFailures: decryptFailures,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLookup records a property lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, key, source string) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("property", key),
		attribute.String("source", source),
	))
}

// RecordMismatch records a declaration-mismatch warning.
func (m *otelMetrics) RecordMismatch(ctx context.Context, key, kind string) {
	m.mismatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("property", key),
		attribute.String("kind", kind),
	))
}

// RecordParseFailure records a multi-value parse failure.
func (m *otelMetrics) RecordParseFailure(ctx context.Context, key string) {
	m.parseFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("property", key),
	))
}

// RecordDecrypt records a decryption attempt.
func (m *otelMetrics) RecordDecrypt(ctx context.Context, key string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("property", key),
	}
	m.decrypts.Add(ctx, 1, metric.WithAttributes(attrs...))
	if err != nil {
		m.decryptFailures.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
