package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is the recording surface used by the HTTP layer and the
// service.
type MetricsCollector interface {
	// IncrementRequests counts one finished HTTP request.
	IncrementRequests(route, status string)

	// RecordRequestDuration observes the time since start for route.
	RecordRequestDuration(start time.Time, route string)

	// ObserveBackendQuery records the outcome and latency of one backend call.
	ObserveBackendQuery(backend, operation string, start time.Time, err error)

	// IncrementTranslationErrors counts criteria rejected by a translator.
	IncrementTranslationErrors(translator string)

	// CreateCounter registers an additional counter on the service registry.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec
}
