package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"inventory-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Owner context metrics
	OwnerContextMissingCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Domain operation metrics
	ProductOperationsCounter  prometheus.CounterVec
	PurchaseOperationsCounter prometheus.CounterVec
	SaleOperationsCounter     prometheus.CounterVec
	ConfigOperationsCounter   prometheus.CounterVec

	// Validation metrics
	ValidationFailuresCounter prometheus.CounterVec

	// Inventory metrics
	ProductStockGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Owner context metrics
	OwnerContextMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_owner_context_missing_total",
			Help: "Total number of requests without store owner context",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Product metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	// Purchase metrics
	PurchaseOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_purchase_operations_total",
			Help: "Total number of purchase operations",
		},
		[]string{"operation"},
	)

	// Sale metrics
	SaleOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sale_operations_total",
			Help: "Total number of sale operations",
		},
		[]string{"operation"},
	)

	// Store configuration metrics
	ConfigOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_config_operations_total",
			Help: "Total number of store configuration operations",
		},
		[]string{"operation"},
	)

	// Validation metrics
	ValidationFailuresCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_validation_failures_total",
			Help: "Total number of rejected writes by validation reason",
		},
		[]string{"entity", "reason"},
	)

	// Inventory metrics
	ProductStockGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_stock",
			Help: "Current stock level for products",
		},
		[]string{"product_id", "product_name", "category"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordPurchaseOperation increments the counter for purchase operations
func RecordPurchaseOperation(operation string) {
	PurchaseOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordSaleOperation increments the counter for sale operations
func RecordSaleOperation(operation string) {
	SaleOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordConfigOperation increments the counter for store configuration operations
func RecordConfigOperation(operation string) {
	ConfigOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordValidationFailure increments the counter for rejected writes
func RecordValidationFailure(entity, reason string) {
	ValidationFailuresCounter.WithLabelValues(entity, reason).Inc()
}

// UpdateProductStock updates the gauge for a product's stock level
func UpdateProductStock(productID string, productName string, category string, count float64) {
	ProductStockGauge.WithLabelValues(productID, productName, category).Set(count)
}
