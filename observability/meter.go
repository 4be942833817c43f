package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/ivakit/iva/logger"
)

// Fetch outcomes recorded as the "outcome" attribute.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       defaultEndpoint,
		Insecure:       true,
		Interval:       defaultInterval,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// FetchMetrics holds the instruments recorded by the fetch client.
type FetchMetrics struct {
	requests metric.Int64Counter
	bytes    metric.Int64Counter
	duration metric.Float64Histogram
	active   metric.Int64UpDownCounter
}

// NewFetchMetrics creates fetch instruments on the given meter.
func NewFetchMetrics(meter metric.Meter) (*FetchMetrics, error) {
	requests, err := meter.Int64Counter("fetch.requests",
		metric.WithDescription("Total number of fetches by format and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch.requests counter: %w", err)
	}

	bytes, err := meter.Int64Counter("fetch.bytes",
		metric.WithDescription("Response body bytes read"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch.bytes counter: %w", err)
	}

	duration, err := meter.Float64Histogram("fetch.duration",
		metric.WithDescription("Duration of fetches in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch.duration histogram: %w", err)
	}

	active, err := meter.Int64UpDownCounter("fetch.active",
		metric.WithDescription("Number of fetches in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch.active gauge: %w", err)
	}

	return &FetchMetrics{requests: requests, bytes: bytes, duration: duration, active: active}, nil
}

// RecordStart increments the in-flight count. Pair with RecordFetch.
func (m *FetchMetrics) RecordStart(ctx context.Context) {
	m.active.Add(ctx, 1)
}

// RecordFetch decrements the in-flight count and records a finished fetch.
func (m *FetchMetrics) RecordFetch(ctx context.Context, format, outcome string, n int64, d time.Duration) {
	m.active.Add(ctx, -1)
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("format", format),
		attribute.String("outcome", outcome),
	))
	if n > 0 {
		m.bytes.Add(ctx, n, metric.WithAttributes(attribute.String("format", format)))
	}
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("format", format),
	))
}
