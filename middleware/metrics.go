package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	statusCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"category", "method", "path"},
	)
)

// HTTPMetrics records request counts, durations, and status categories.
type HTTPMetrics struct{}

func NewHTTPMetrics() *HTTPMetrics {
	prometheus.MustRegister(requestCounter, requestDuration, statusCategoryCounter)
	return &HTTPMetrics{}
}

func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)
		method := c.Request.Method
		// FullPath keeps the route template (":reportId" instead of every id)
		// so label cardinality stays bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestCounter.WithLabelValues(method, path, statusStr).Inc()
		requestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())

		var category string
		switch {
		case status >= 200 && status < 300:
			category = "2xx"
		case status >= 400 && status < 500:
			category = "4xx"
		case status >= 500 && status < 600:
			category = "5xx"
		}
		if category != "" {
			statusCategoryCounter.WithLabelValues(category, method, path).Inc()
		}
	}
}
