package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics manages all metrics for the service. A disabled collector is valid
// and every record method no-ops on it.
type Metrics struct {
	meter metric.Meter

	httpRequests metric.Int64Counter
	httpLatency  metric.Float64Histogram

	genRequests metric.Int64Counter
}

// MetricsConfig configures the metrics collector
type MetricsConfig struct {
	Enabled bool
}

// NewMetrics creates a new metrics collector backed by a Prometheus exporter.
func NewMetrics(config MetricsConfig) (*Metrics, error) {
	if !config.Enabled {
		return &Metrics{}, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter("neurox")

	httpRequests, err := meter.Int64Counter(
		"neurox.http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests counter: %w", err)
	}

	httpLatency, err := meter.Float64Histogram(
		"neurox.http.latency",
		metric.WithDescription("HTTP request latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_latency histogram: %w", err)
	}

	genRequests, err := meter.Int64Counter(
		"neurox.generation.requests.total",
		metric.WithDescription("Total number of generation proxy calls"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation_requests counter: %w", err)
	}

	return &Metrics{
		meter:        meter,
		httpRequests: httpRequests,
		httpLatency:  httpLatency,
		genRequests:  genRequests,
	}, nil
}

// Handler returns the HTTP handler serving the Prometheus registry.
func (m *Metrics) Handler() http.Handler {
	return promclient.Handler()
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, route, method string, status int, duration time.Duration) {
	if m == nil || m.httpRequests == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("method", method),
		attribute.Int("status", status),
	)
	m.httpRequests.Add(ctx, 1, attrs)
	m.httpLatency.Record(ctx, duration.Seconds(), attrs)
}

// RecordGeneration records one generation proxy call and its outcome.
func (m *Metrics) RecordGeneration(ctx context.Context, outcome string) {
	if m == nil || m.genRequests == nil {
		return
	}
	m.genRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
