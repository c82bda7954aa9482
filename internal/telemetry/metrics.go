package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for Pwinty API calls.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Errors          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg yields working collectors that are not exported anywhere,
// so several clients can live in one process without colliding on the
// default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwinty_requests_total",
				Help: "Total number of Pwinty API requests by operation and status code",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pwinty_request_duration_seconds",
				Help:    "Pwinty API request duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwinty_errors_total",
				Help: "Total Pwinty client errors by operation and error kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

// RecordRequest records a completed HTTP exchange.
func (m *Metrics) RecordRequest(operation, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordError records a failed operation.
func (m *Metrics) RecordError(operation, kind string) {
	m.Errors.WithLabelValues(operation, kind).Inc()
}
