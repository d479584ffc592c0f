// Package metrics provides Prometheus metrics collection for the recipe cost service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ContributionComputationsTotal tracks cost contribution computations.
	ContributionComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cost_contribution_computations_total",
			Help: "Total number of cost contribution computations",
		},
		[]string{"status"},
	)

	// RecipeTotalAdjustmentsTotal tracks recipe total cost adjustments by the
	// operation that triggered them.
	RecipeTotalAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_total_adjustments_total",
			Help: "Total number of recipe total cost adjustments",
		},
		[]string{"trigger"},
	)

	// CascadeFanout tracks how many recipes an ingredient change touched.
	CascadeFanout = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingredient_cascade_fanout",
			Help:    "Number of recipes updated per ingredient cascade",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// CacheOperationsTotal tracks in-process cache operations by result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordContributionComputation records one contribution computation.
func RecordContributionComputation(status string) {
	ContributionComputationsTotal.WithLabelValues(status).Inc()
}

// RecordTotalAdjustment records one recipe total adjustment.
func RecordTotalAdjustment(trigger string) {
	RecipeTotalAdjustmentsTotal.WithLabelValues(trigger).Inc()
}

// RecordCascadeFanout records the number of recipes an ingredient cascade
// touched.
func RecordCascadeFanout(recipes int) {
	CascadeFanout.Observe(float64(recipes))
}

// RecordCacheOperation records a cache operation and its result.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
