// Package metrics exposes the service's Prometheus metrics: HTTP request
// counters, backend query outcomes and latencies, and translation failures.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated registry and the server exposing it.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	backendQueries    *prometheus.CounterVec
	backendDuration   *prometheus.HistogramVec
	translationErrors *prometheus.CounterVec
}

// NewMetrics registers the service metrics on a fresh registry. Every metric
// carries a constant "service" label.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrapped,
	}

	m.requestsTotal = m.createCounterVec("requests_total",
		"Total number of processed HTTP requests", []string{"route", "status"})
	m.requestDuration = m.createHistogramVec("request_duration_seconds",
		"Duration of HTTP requests in seconds", []string{"route"}, prometheus.DefBuckets)
	m.backendQueries = m.createCounterVec("backend_queries_total",
		"Queries executed against the relational store and the search index", []string{"backend", "operation", "status"})
	m.backendDuration = m.createHistogramVec("backend_query_duration_seconds",
		"Backend query latency in seconds", []string{"backend", "operation"}, prometheus.DefBuckets)
	m.translationErrors = m.createCounterVec("translation_errors_total",
		"Criteria rejected at translation time", []string{"translator"})

	wrapped.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.backendQueries,
		m.backendDuration,
		m.translationErrors,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}
	m.Server = &http.Server{
		Addr:    address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}

func (m *Metrics) createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func (m *Metrics) createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
