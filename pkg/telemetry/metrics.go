package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the name of the application meter
const MeterName = "sporthub-api"

// MetricOpts describes a metric instrument
type MetricOpts struct {
	Name        string
	Description string
	Unit        string
}

// Counter is a monotonically increasing counter
type Counter struct {
	counter metric.Int64Counter
}

// NewCounter creates a new counter instrument
func NewCounter(opts MetricOpts) (*Counter, error) {
	meter := otel.Meter(MeterName)
	c, err := meter.Int64Counter(opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}
	return &Counter{counter: c}, nil
}

// Inc increments the counter by one
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Add increments the counter by the given value
func (c *Counter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

// Histogram records a distribution of values
type Histogram struct {
	histogram metric.Float64Histogram
}

// NewHistogram creates a new histogram instrument
func NewHistogram(opts MetricOpts) (*Histogram, error) {
	meter := otel.Meter(MeterName)
	h, err := meter.Float64Histogram(opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}
	return &Histogram{histogram: h}, nil
}

// NewHistogramWithBuckets creates a new histogram with explicit bucket boundaries
func NewHistogramWithBuckets(opts MetricOpts, buckets []float64) (*Histogram, error) {
	meter := otel.Meter(MeterName)
	h, err := meter.Float64Histogram(opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
		metric.WithExplicitBucketBoundaries(buckets...),
	)
	if err != nil {
		return nil, err
	}
	return &Histogram{histogram: h}, nil
}

// Record records a value on the histogram
func (h *Histogram) Record(ctx context.Context, value float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, value, metric.WithAttributes(attrs...))
}

// UpDownCounter tracks a value that can go up and down
type UpDownCounter struct {
	counter metric.Int64UpDownCounter
}

// NewUpDownCounter creates a new up-down counter instrument
func NewUpDownCounter(opts MetricOpts) (*UpDownCounter, error) {
	meter := otel.Meter(MeterName)
	c, err := meter.Int64UpDownCounter(opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}
	return &UpDownCounter{counter: c}, nil
}

// Inc increments the counter by one
func (c *UpDownCounter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Dec decrements the counter by one
func (c *UpDownCounter) Dec(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, -1, metric.WithAttributes(attrs...))
}
