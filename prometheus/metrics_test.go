package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetricsReusable(t *testing.T) {
	require.NotPanics(t, func() {
		NewHTTPMetrics("test_metrics_a")
		NewHTTPMetrics("test_metrics_b")
	})
}

func TestTrackDBOperationObservesDuration(t *testing.T) {
	m := NewHTTPMetrics("test_metrics_db")

	before := testutil.CollectAndCount(DBOperationDuration)
	m.TrackDBOperation("query")(time.Now())
	assert.Greater(t, testutil.CollectAndCount(DBOperationDuration), before)
}

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewHTTPMetrics("test_metrics_http")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/jobs")

	handler := m.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	counter := RequestCounter.WithLabelValues("test_metrics_http", http.MethodGet, "/jobs", "200")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))

	category := StatusCodeCategoryCounter.WithLabelValues("test_metrics_http", "2xx", http.MethodGet, "/jobs")
	assert.Equal(t, float64(1), testutil.ToFloat64(category))
}
