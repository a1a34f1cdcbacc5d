package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	cmsFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navmenu_cms_fetch_total",
		Help: "Total CMS collection fetches by outcome",
	}, []string{"collection", "outcome"})

	cmsFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "navmenu_cms_fetch_duration_seconds",
		Help:    "CMS collection fetch latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	cacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navmenu_cache_requests_total",
		Help: "Menu cache reads by result",
	}, []string{"result"})

	refreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navmenu_refresh_total",
		Help: "Scheduled menu refreshes by outcome",
	}, []string{"outcome"})

	initOnce sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup; recording before Init is safe but unexported.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(cmsFetches, cmsFetchDuration, cacheRequests, refreshes)
	})
}

// RecordFetch records the outcome and latency of one collection fetch.
func RecordFetch(collection string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	cmsFetches.WithLabelValues(collection, outcome).Inc()
	cmsFetchDuration.WithLabelValues(collection).Observe(elapsed.Seconds())
}

// RecordCache records a cache hit or miss.
func RecordCache(result string) {
	cacheRequests.WithLabelValues(result).Inc()
}

// RecordRefresh records the outcome of a scheduled refresh.
func RecordRefresh(err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	refreshes.WithLabelValues(outcome).Inc()
}
