package middleware

import (
	"net/http"
	"strconv"
	"time"

	"guestbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedPath = "unmatched"

// MetricsMiddleware records request durations by route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the latency of every request. Routes are labelled by their template.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = StatusOf(err)
		}
		if status == 0 {
			status = http.StatusOK
		}

		path := c.Path()
		if path == "" {
			path = unmatchedPath
		}

		m.metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}
