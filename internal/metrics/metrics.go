package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the VIN lookup service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	RegistrySyncTotal    prometheus.CounterVec
	RegistrySyncDuration prometheus.Histogram
	VehicleViewsTotal    prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinlookup_http_requests_total",
				Help: "Total HTTP requests processed by action, method, and status code",
			},
			[]string{"action", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vinlookup_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"action", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vinlookup_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"action"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinlookup_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinlookup_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		RegistrySyncTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vinlookup_registry_sync_total",
				Help: "Registry synchronization attempts by outcome",
			},
			[]string{"outcome"},
		),
		RegistrySyncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vinlookup_registry_sync_duration_seconds",
				Help:    "Registry synchronization duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		VehicleViewsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "vinlookup_vehicle_views_total",
				Help: "Total vehicle view resolutions served",
			},
		),
	}
}
