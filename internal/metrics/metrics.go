// Package metrics provides Prometheus metrics for the postage API.
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

	// QuotesTotal counts quote requests by outcome.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postage_quotes_total",
			Help: "Total number of quote requests",
		},
		[]string{"status"},
	)

	// QuoteDuration tracks end-to-end quote aggregation time.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postage_quote_duration_seconds",
			Help:    "Quote aggregation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// CarrierQuotesTotal counts carrier adapter results by provider and outcome.
	CarrierQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postage_carrier_quotes_total",
			Help: "Carrier adapter results by provider and outcome",
		},
		[]string{"provider", "result"},
	)

	// CatalogMutationsTotal counts create, update and delete operations on items and packaging.
	CatalogMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postage_catalog_mutations_total",
			Help: "Catalog mutations by resource and operation",
		},
		[]string{"resource", "operation"},
	)

	// StorageCircuitState reports each storage circuit breaker state (0 closed, 1 open, 2 half-open).
	StorageCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "postage_storage_circuit_state",
			Help: "Storage circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"breaker"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records the outcome and duration of a quote request.
func RecordQuote(duration time.Duration, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status).Inc()
}

// RecordCarrierQuote records one carrier adapter result.
func RecordCarrierQuote(provider, result string) {
	CarrierQuotesTotal.WithLabelValues(provider, result).Inc()
}

// RecordCatalogMutation records a create, update or delete.
func RecordCatalogMutation(resource, operation string) {
	CatalogMutationsTotal.WithLabelValues(resource, operation).Inc()
}

// SetStorageCircuitState records the state of a storage circuit breaker.
func SetStorageCircuitState(breaker string, state int) {
	StorageCircuitState.WithLabelValues(breaker).Set(float64(state))
}
