package prometheus

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// StatusCodeCategoryCounter counts responses by status category
	StatusCodeCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category", "method", "path"},
	)

	// EntityOperationCounter counts service-layer operations per entity
	EntityOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"service", "entity", "operation"},
	)

	// DBOperationDuration records database operation duration in seconds
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	// AuthErrorCounter counts authentication failures by reason
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"service", "reason"},
	)
)

// HTTPMetrics holds configuration and state for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
}

// registerOnce guards registration against the default registry; collectors
// are package-level, so registering per instance would panic.
var registerOnce sync.Once

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(StatusCodeCategoryCounter)
		prometheus.MustRegister(EntityOperationCounter)
		prometheus.MustRegister(DBOperationDuration)
		prometheus.MustRegister(AuthErrorCounter)
	})
	return &HTTPMetrics{ServiceName: serviceName}
}

// RecordEntityOperation increments the operation counter for an entity
func (m *HTTPMetrics) RecordEntityOperation(entity, operation string) {
	EntityOperationCounter.WithLabelValues(m.ServiceName, entity, operation).Inc()
}

// RecordAuthError increments the auth error counter for a reason
func (m *HTTPMetrics) RecordAuthError(reason string) {
	AuthErrorCounter.WithLabelValues(m.ServiceName, reason).Inc()
}

// TrackDBOperation returns a function to defer that records the duration of
// a database operation. Usage: defer m.TrackDBOperation("query")(time.Now())
func (m *HTTPMetrics) TrackDBOperation(operation string) func(start time.Time) {
	return func(start time.Time) {
		DBOperationDuration.WithLabelValues(m.ServiceName, operation).Observe(time.Since(start).Seconds())
	}
}

// Middleware creates an Echo middleware function that records HTTP request metrics
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()

			category := ""
			switch {
			case status >= 200 && status < 300:
				category = "2xx"
			case status >= 400 && status < 500:
				category = "4xx"
			case status >= 500 && status < 600:
				category = "5xx"
			}
			if category != "" {
				StatusCodeCategoryCounter.WithLabelValues(m.ServiceName, category, method, path).Inc()
			}

			duration := time.Since(start).Seconds()
			RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).Observe(duration)

			return err
		}
	}
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
