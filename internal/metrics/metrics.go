package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/sporthub/sporthub-api/pkg/telemetry"
)

var (
	// Registration counters
	RegistrationsCreated *telemetry.Counter

	// Payment counters
	PaymentsCompleted *telemetry.Counter
	PaymentsFailed    *telemetry.Counter

	// Histograms
	PaymentDuration *telemetry.Histogram
	PaymentAmount   *telemetry.Histogram
	RequestDuration *telemetry.Histogram

	initOnce sync.Once
	initErr  error
)

// Init initializes all application metrics
func Init() error {
	initOnce.Do(func() {
		initErr = initMetrics()
	})
	return initErr
}

func initMetrics() error {
	var err error

	RegistrationsCreated, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "registration_created_total",
		Description: "Total number of event registrations created",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	PaymentsCompleted, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "payment_completed_total",
		Description: "Total number of completed payments",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	PaymentsFailed, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "payment_failed_total",
		Description: "Total number of failed payments",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	PaymentDuration, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "payment_processing_duration_seconds",
		Description: "Duration of payment processing",
		Unit:        "s",
	}, []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10})
	if err != nil {
		return err
	}

	PaymentAmount, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "payment_amount",
		Description: "Payment amounts distribution",
		Unit:        "THB",
	}, []float64{100, 250, 500, 1000, 2500, 5000, 10000})
	if err != nil {
		return err
	}

	RequestDuration, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request duration in seconds",
		Unit:        "s",
	}, []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5})
	if err != nil {
		return err
	}

	return nil
}

// RecordRegistrationCreated records a registration creation metric
func RecordRegistrationCreated(ctx context.Context, registrationType string) {
	if RegistrationsCreated != nil {
		RegistrationsCreated.Inc(ctx,
			attribute.String("type", registrationType),
		)
	}
}

// RecordPaymentCompleted records a successful payment metric
func RecordPaymentCompleted(ctx context.Context, method string, amount, durationSeconds float64) {
	if PaymentsCompleted != nil {
		PaymentsCompleted.Inc(ctx,
			attribute.String("method", method),
		)
	}
	if PaymentAmount != nil {
		PaymentAmount.Record(ctx, amount,
			attribute.String("method", method),
		)
	}
	if PaymentDuration != nil {
		PaymentDuration.Record(ctx, durationSeconds,
			attribute.String("method", method),
		)
	}
}

// RecordPaymentFailed records a payment failure metric
func RecordPaymentFailed(ctx context.Context, method, reason string) {
	if PaymentsFailed != nil {
		PaymentsFailed.Inc(ctx,
			attribute.String("method", method),
			attribute.String("reason", reason),
		)
	}
}

// RecordRequestDuration records HTTP request duration
func RecordRequestDuration(ctx context.Context, operation string, durationSeconds float64) {
	if RequestDuration != nil {
		RequestDuration.Record(ctx, durationSeconds,
			attribute.String("operation", operation),
		)
	}
}
