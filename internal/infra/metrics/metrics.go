// Package metrics owns the Prometheus registry and the mediahub collectors.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mediahub"

// Metrics implements service.MetricsRecorder and exposes HTTP instrumentation.
type Metrics struct {
	registry     *prometheus.Registry
	authEvents   *prometheus.CounterVec
	toggles      *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a private registry with the Go and process collectors plus the mediahub metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		authEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Authentication operations by outcome",
		}, []string{"operation", "outcome"}),

		toggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relation_toggles_total",
			Help:      "Settled relation toggles by kind and result",
		}, []string{"kind", "result"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) RecordAuthEvent(operation, outcome string) {
	m.authEvents.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordToggle(kind, result string) {
	m.toggles.WithLabelValues(kind, result).Inc()
}

// ObserveHTTP records one request. route must be the template, never the raw path.
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// RegisterDBStats exports the connection pool stats of db under db_name=name.
func (m *Metrics) RegisterDBStats(name string, db *sql.DB) {
	if name == "" {
		name = namespace
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
