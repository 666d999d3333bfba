package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid_input"
	OutcomeOverflow = "overflow"
	OutcomeError    = "error"
)

// Metrics holds the service collectors. Each instance owns its registry so tests can
// create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	calculations  *prometheus.CounterVec
	grpcRequests  *prometheus.CounterVec
	grpcDuration  *prometheus.HistogramVec
	statusChanges *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricing_calculations_total",
			Help: "Price calculations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		grpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricing_grpc_requests_total",
			Help: "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		grpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pricing_grpc_request_duration_seconds",
			Help:    "gRPC request latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricing_booking_status_changes_total",
			Help: "Committed booking status transitions by target status.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.grpcRequests,
		m.grpcDuration,
		m.statusChanges,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCalculation counts one calculation attempt.
func (m *Metrics) ObserveCalculation(operation, outcome string) {
	m.calculations.WithLabelValues(operation, outcome).Inc()
}

// ObserveRequest records one finished gRPC call.
func (m *Metrics) ObserveRequest(method, code string, elapsed time.Duration) {
	m.grpcRequests.WithLabelValues(method, code).Inc()
	m.grpcDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveStatusChange counts a committed booking status transition.
func (m *Metrics) ObserveStatusChange(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
