package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/cashflow/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Dashboard metrics
	DashboardComputations *prometheus.CounterVec
	DashboardDuration     *prometheus.HistogramVec
	DashboardErrors       *prometheus.CounterVec

	// Entry management metrics
	EntryWrites *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec
	DBRetries     prometheus.Counter

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Dashboard metrics
		DashboardComputations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_dashboard_computations_total",
				Help: "Total dashboard computations by view mode",
			},
			[]string{"view"},
		),
		DashboardDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_dashboard_duration_seconds",
				Help:    "Duration of dashboard computations including ledger reads",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"view"},
		),
		DashboardErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_dashboard_errors_total",
				Help: "Total failed dashboard computations by error type",
			},
			[]string{"error_type"},
		),

		// Entry management metrics
		EntryWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_entry_writes_total",
				Help: "Total entry management operations",
			},
			[]string{"operation", "status"},
		),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cashflow_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Database metrics
		DBQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cashflow_db_connections",
			Help: "Current number of acquired database connections",
		}),
		DBErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
		DBRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_db_retries_total",
			Help: "Total retried database operations",
		}),

		// Redis metrics
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveDashboard records one dashboard computation.
func (m *Metrics) ObserveDashboard(view domain.ViewMode, duration time.Duration, err error) {
	m.DashboardComputations.WithLabelValues(string(view)).Inc()
	m.DashboardDuration.WithLabelValues(string(view)).Observe(duration.Seconds())

	if err != nil {
		m.DashboardErrors.WithLabelValues(errorType(err)).Inc()
	}
}

// ObserveHTTP records one completed HTTP request. path must be a route
// pattern, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveQuery records one database query.
func (m *Metrics) ObserveQuery(operation, table string, duration time.Duration, err error) {
	m.DBQueries.WithLabelValues(operation, table).Inc()
	m.DBDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

	if err != nil {
		m.DBErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveEntryWrite records one entry management operation.
func (m *Metrics) ObserveEntryWrite(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.EntryWrites.WithLabelValues(operation, status).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidYear), errors.Is(err, domain.ErrInvalidMonth):
		return "validation"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "storage"
	}
}

// ObserveRedis records one Redis operation.
func (m *Metrics) ObserveRedis(operation string, err error) {
	m.RedisOperations.WithLabelValues(operation).Inc()

	if err != nil {
		m.RedisErrors.WithLabelValues(operation).Inc()
	}
}
