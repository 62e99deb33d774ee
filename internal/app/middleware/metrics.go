package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics records request count and latency per route through the
// OTel meter, exported alongside the Prometheus counters.
func RequestMetrics(meter metric.Meter) gin.HandlerFunc {
	durationHistogram, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		attributes := metric.WithAttributes(
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.method", c.Request.Method),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
		requestCounter.Add(c.Request.Context(), 1, attributes)
		durationHistogram.Record(c.Request.Context(), time.Since(startTime).Milliseconds(), attributes)
	}
}
