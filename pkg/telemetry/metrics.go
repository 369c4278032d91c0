package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	// PushJobName is the pushgateway job the launch metrics are grouped under
	PushJobName = "hyperion_launcher"

	launchesMetricName = "launcher_launches"
	durationMetricName = "launcher_launch_duration"
)

// Metrics records the outcome of every launch into a prometheus registry
type Metrics struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
	launches metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics wires an otel meter provider to a dedicated prometheus registry
func NewMetrics(ctx context.Context) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}
	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(TracerName)

	launches, err := meter.Int64Counter(launchesMetricName,
		metric.WithDescription("Number of experiment launch attempts by verdict"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(durationMetricName,
		metric.WithDescription("Duration of the launch request"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		registry: registry,
		provider: provider,
		launches: launches,
		duration: duration,
	}, nil
}

// RecordLaunch counts a launch attempt and observes its request duration
func (m *Metrics) RecordLaunch(ctx context.Context, verdict string, errorCode string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("verdict", verdict),
		attribute.String("error_code", errorCode),
	)
	m.launches.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// Gatherer exposes the registry holding the launch metrics
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Push sends the collected metrics to the pushgateway
func (m *Metrics) Push(ctx context.Context, url string) error {
	return push.New(url, PushJobName).Gatherer(m.registry).PushContext(ctx)
}

// Shutdown stops the meter provider
func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
