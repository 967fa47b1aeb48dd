package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Status labels recorded with every operation.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records counts and durations of account operations.
type BusinessMetrics interface {
	// Observe records one finished operation. A nil err is recorded as
	// StatusSuccess, anything else as StatusError.
	// Operation examples: "subscription_list", "subscription_resolve", "subscription_set"
	Observe(ctx context.Context, operation string, duration time.Duration, err error)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry instruments.
type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics creates a BusinessMetrics backed by the given meter provider.
// The namespace is used as a prefix for all metric names (e.g., "azurecli").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of account operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of account operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

// Observe increments the operation counter and records the duration, both
// labelled with operation and status.
func (b *businessMetrics) Observe(ctx context.Context, operation string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", statusOf(err)),
	)
	b.operationCounter.Add(ctx, 1, attrs)
	b.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// Observe does nothing.
func (n *NoOpBusinessMetrics) Observe(context.Context, string, time.Duration, error) {}
