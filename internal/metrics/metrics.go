package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the vinculación backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Ingestion Metrics
	UploadsTotal       prometheus.CounterVec
	RowsIngestedTotal  prometheus.CounterVec
	RowsRejectedTotal  prometheus.CounterVec
	UploadRowsDuration prometheus.HistogramVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinculacion_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vinculacion_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vinculacion_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinculacion_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vinculacion_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		UploadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinculacion_uploads_total",
				Help: "Total bulk uploads by entity and result (ok, rejected, failed)",
			},
			[]string{"entity", "result"},
		),
		RowsIngestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinculacion_rows_ingested_total",
				Help: "Rows inserted through bulk uploads by entity",
			},
			[]string{"entity"},
		),
		RowsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinculacion_rows_rejected_total",
				Help: "Rows rejected during bulk uploads by entity and reason (duplicado_csv, duplicado_bd, formato)",
			},
			[]string{"entity", "reason"},
		),
		UploadRowsDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vinculacion_upload_duration_seconds",
				Help:    "End to end bulk upload duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"entity"},
		),
	}
}
