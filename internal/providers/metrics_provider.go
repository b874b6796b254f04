package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ftd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	AddStepsTotal(count int)
	IncTicksTotal()
	IncRewardClaims(rewardID string)
	SetTrackedDays(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	stepsTotal          prometheus.Counter
	ticksTotal          prometheus.Counter
	rewardClaims        *prometheus.CounterVec
	trackedDays         prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) AddStepsTotal(count int) {
	m.stepsTotal.Add(float64(count))
}

func (m *MetricsProvider) IncTicksTotal() {
	m.ticksTotal.Inc()
}

func (m *MetricsProvider) IncRewardClaims(rewardID string) {
	m.rewardClaims.WithLabelValues(rewardID).Inc()
}

func (m *MetricsProvider) SetTrackedDays(count int) {
	m.trackedDays.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ftd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ftd_persistence_duration_seconds",
			Help:    "Store flush duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		stepsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftd_steps_total",
			Help: "Total number of steps accumulated since start",
		}),

		ticksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ftd_ticks_total",
			Help: "Total number of tracking session ticks",
		}),

		rewardClaims: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ftd_reward_claims_total",
			Help: "Total number of successful reward claims",
		}, []string{"reward"}),

		trackedDays: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ftd_tracked_days",
			Help: "Number of calendar days with a persisted record",
		}),
	}

	return m
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) AddStepsTotal(_ int)                              {}
func (n *noopMetrics) IncTicksTotal()                                   {}
func (n *noopMetrics) IncRewardClaims(_ string)                         {}
func (n *noopMetrics) SetTrackedDays(_ int)                             {}
