package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBackendQuery(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "smquery", Namespace: "smquery"})

	start := time.Now()
	m.ObserveBackendQuery("postgres", "list_datasets", start, nil)
	m.ObserveBackendQuery("postgres", "list_datasets", start, errors.New("down"))
	m.ObserveBackendQuery("elasticsearch", "search", start, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendQueries.WithLabelValues("postgres", "list_datasets", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendQueries.WithLabelValues("postgres", "list_datasets", StatusError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.backendDuration))
}

func TestTranslationErrorsAndRequests(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "smquery"})

	m.IncrementTranslationErrors("annotations")
	m.IncrementTranslationErrors("annotations")
	m.IncrementRequests("/v1/datasets", "200")
	m.RecordRequestDuration(time.Now(), "/v1/datasets")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.translationErrors.WithLabelValues("annotations")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/v1/datasets", "200")))
}

func TestExposition(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "smquery", Namespace: "smquery"})
	m.IncrementTranslationErrors("datasets")
	extra := m.CreateCounter("cache_misses_total", "test counter", []string{"kind"})
	extra.WithLabelValues("x").Inc()

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `smquery_translation_errors_total{service="smquery",translator="datasets"} 1`), body)
	assert.Contains(t, body, `smquery_cache_misses_total{kind="x",service="smquery"} 1`)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}
