// Package observability exposes Prometheus metrics of the moderation
// workflow, the audit log sink and the HTTP layer.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/twitter-backend/internal/adapter/auditlog"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

const namespace = "twitter"

// Metrics holds every collector registered by the application.
type Metrics struct {
	registry *prometheus.Registry

	proposals     *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	auditWritten  prometheus.Counter
	auditDropped  prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		proposals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_requests_proposed_total",
			Help:      "Approval requests enqueued by admins.",
		}, []string{"kind"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_resolutions_total",
			Help:      "Per-item outcomes of super-admin resolution batches.",
		}, []string{"kind", "outcome"}),
		auditWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_written_total",
			Help:      "Audit events appended to the log file.",
		}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_dropped_total",
			Help:      "Audit events dropped because the sink queue was full or closed.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.proposals, m.resolutions, m.auditWritten, m.auditDropped,
		m.httpRequests, m.httpDurations,
	)

	return m
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SinkMetrics adapts the audit counters for the audit log sink.
func (m *Metrics) SinkMetrics() auditlog.SinkMetrics {
	return auditlog.SinkMetrics{Written: m.auditWritten, Dropped: m.auditDropped}
}

// ProposalCreated counts one enqueued approval request.
func (m *Metrics) ProposalCreated(kind domain.RequestKind) {
	m.proposals.WithLabelValues(kind.String()).Inc()
}

// ResolutionRecorded counts one batch item outcome.
func (m *Metrics) ResolutionRecorded(kind domain.RequestKind, outcome domain.Outcome) {
	m.resolutions.WithLabelValues(kind.String(), outcome.String()).Inc()
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDurations.WithLabelValues(route).Observe(d.Seconds())
}
