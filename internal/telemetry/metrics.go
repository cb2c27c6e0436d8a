// Package telemetry wires tracing and Prometheus metrics for catalog requests.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

// PrometheusMetrics counts and times catalog requests.
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with registerer.
func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bdfd_catalog_requests_total",
				Help: "Catalog API requests by domain, operation and outcome",
			},
			[]string{"domain", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bdfd_catalog_request_duration_seconds",
				Help:    "Catalog API request latency",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"domain", "operation"},
		),
	}
	registerer.MustRegister(m.requests, m.duration)
	return m
}

// ObserveRequest implements bdfd.Metrics.
func (m *PrometheusMetrics) ObserveRequest(domain bdfd.Domain, op bdfd.Operation, outcome string, duration time.Duration) {
	m.requests.WithLabelValues(string(domain), string(op), outcome).Inc()
	m.duration.WithLabelValues(string(domain), string(op)).Observe(duration.Seconds())
}

// Handler serves the metrics gathered by gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
