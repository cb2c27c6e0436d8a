package telemetry

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

func TestPrometheusMetrics_ImplementsInterface(t *testing.T) {
	var _ bdfd.Metrics = (*PrometheusMetrics)(nil)
}

func TestPrometheusMetrics_ObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	m.ObserveRequest(bdfd.DomainFunction, bdfd.OperationInfo, bdfd.OutcomeSuccess, 20*time.Millisecond)
	m.ObserveRequest(bdfd.DomainFunction, bdfd.OperationInfo, bdfd.OutcomeSuccess, 30*time.Millisecond)
	m.ObserveRequest(bdfd.DomainCallback, bdfd.OperationList, bdfd.OutcomeHTTPError, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("function", "info", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("callback", "list", "http_error")))

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "bdfd_catalog_requests_total")
	assert.Contains(t, names, "bdfd_catalog_request_duration_seconds")
}

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)
	m.ObserveRequest(bdfd.DomainCallback, bdfd.OperationTagList, bdfd.OutcomeSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `bdfd_catalog_requests_total{domain="callback",operation="tag-list",outcome="success"} 1`))
}
