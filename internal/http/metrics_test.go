package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/fyrsmithlabs/phaseart/internal/logging"
	"github.com/fyrsmithlabs/phaseart/internal/telemetry"
)

func TestHTTPMetrics_MetricsMiddleware(t *testing.T) {
	tel := telemetry.NewTestTelemetry()
	m := NewHTTPMetrics(tel.Meter(instrumentationName), logging.Nop())

	e := echo.New()
	e.Use(m.MetricsMiddleware())
	e.GET("/api/phases/:name", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("name"))
	})

	for _, name := range []string{"observation", "testing", "audit"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/phases/"+name, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rm, err := tel.Collect(context.Background())
	require.NoError(t, err)

	requests, ok := telemetry.FindMetric(rm, "phaseart.http.requests_total")
	require.True(t, ok)
	sum, ok := requests.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1, "phase names must not become label values")
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)

	endpoint, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("endpoint"))
	require.True(t, ok)
	assert.Equal(t, "/api/phases/:name", endpoint.AsString())

	for _, name := range []string{
		"phaseart.http.request_duration_seconds",
		"phaseart.http.response_size_bytes",
		"phaseart.http.active_requests",
	} {
		_, ok := telemetry.FindMetric(rm, name)
		assert.True(t, ok, name)
	}

	active, _ := telemetry.FindMetric(rm, "phaseart.http.active_requests")
	gauge, ok := active.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(0), gauge.DataPoints[0].Value)
}

func TestHTTPMetrics_RecordsErrorStatus(t *testing.T) {
	ts := setupTestServer(t, nil)

	rec := ts.get("/api/phases/nonexistent")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rm, err := ts.tel.Collect(context.Background())
	require.NoError(t, err)
	requests, ok := telemetry.FindMetric(rm, "phaseart.http.requests_total")
	require.True(t, ok)
	sum := requests.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)

	status, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("status"))
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unmatched", normalizePath(""))
	assert.Equal(t, "/api/phases/:name/svg", normalizePath("/api/phases/:name/svg"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := setupTestServer(t, nil)

	require.Equal(t, http.StatusOK, ts.get("/svg").Code)
	require.Equal(t, http.StatusOK, ts.get("/api/audit?depth=2").Code)
	require.Equal(t, http.StatusOK, ts.get("/api/audit?depth=3").Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(ts.rendered.WithLabelValues(kindDocument)))
	assert.Equal(t, 2.0, testutil.ToFloat64(ts.rendered.WithLabelValues(kindAudit)))
	assert.Equal(t, 2, testutil.CollectAndCount(ts.rendered, "phaseart_documents_rendered_total"))

	gathered, err := testutil.GatherAndCount(ts.reg, "phaseart_documents_rendered_total")
	require.NoError(t, err)
	assert.Equal(t, 2, gathered)

	rec := ts.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `phaseart_documents_rendered_total{kind="audit"} 2`)
	assert.Contains(t, rec.Body.String(), `phaseart_documents_rendered_total{kind="document"} 1`)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
