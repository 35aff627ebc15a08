package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

func (m *Metrics) IncrementRequests(route, status string) {
	m.requestsTotal.WithLabelValues(route, status).Inc()
}

func (m *Metrics) RecordRequestDuration(start time.Time, route string) {
	m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveBackendQuery(backend, operation string, start time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.backendQueries.WithLabelValues(backend, operation, status).Inc()
	m.backendDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementTranslationErrors(translator string) {
	m.translationErrors.WithLabelValues(translator).Inc()
}

func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := m.createCounterVec(name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}
