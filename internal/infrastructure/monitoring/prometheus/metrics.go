// Package prometheus exposes the engine's operational metrics.  A single
// Metrics value owns its registry so tests can register freely without
// colliding on the global default registry.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

const namespace = "compliance_engine"

var (
	validationBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10}
	realtimeBuckets   = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5}
	httpBuckets       = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
)

// Metrics implements validation.MetricsRecorder and carries the HTTP layer
// instrumentation used by the gin middleware.
type Metrics struct {
	registry *prometheus.Registry

	validationsTotal    *prometheus.CounterVec
	validationDuration  prometheus.Histogram
	validationScore     prometheus.Histogram
	issuesTotal         *prometheus.CounterVec
	realtimeDuration    prometheus.Histogram
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics builds and registers all engine metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Completed cultural validation runs by risk level.",
		}, []string{"risk_level"}),
		validationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Wall time of full cultural validation runs.",
			Buckets:   validationBuckets,
		}),
		validationScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_overall_score",
			Help:      "Distribution of overall compliance scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		issuesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_total",
			Help:      "Validation issues detected, by severity.",
		}, []string{"severity"}),
		realtimeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "realtime_score_duration_seconds",
			Help:      "Latency of real-time draft scoring.",
			Buckets:   realtimeBuckets,
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   httpBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.validationsTotal,
		m.validationDuration,
		m.validationScore,
		m.issuesTotal,
		m.realtimeDuration,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)
	return m
}

// ObserveValidation records one completed validation run.
func (m *Metrics) ObserveValidation(duration time.Duration, riskLevel ctypes.RiskLevel, overallScore int) {
	m.validationsTotal.WithLabelValues(string(riskLevel)).Inc()
	m.validationDuration.Observe(duration.Seconds())
	m.validationScore.Observe(float64(overallScore))
}

// CountIssue records one detected issue.
func (m *Metrics) CountIssue(severity ctypes.Severity) {
	m.issuesTotal.WithLabelValues(string(severity)).Inc()
}

// ObserveRealtime records the latency of one real-time scoring call.
func (m *Metrics) ObserveRealtime(duration time.Duration) {
	m.realtimeDuration.Observe(duration.Seconds())
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
