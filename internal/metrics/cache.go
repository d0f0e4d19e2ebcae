// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheResultTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_cache_requests_total",
		Help: "Cache lookups by cache and result",
	}, []string{"cache", "result"}) // result=hit|miss

	cacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_cache_errors_total",
		Help: "Cache backend errors by backend and operation",
	}, []string{"backend", "op"})

	pageCachePurges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fecauca_page_cache_purges_total",
		Help: "Rendered page cache purges triggered by content updates",
	})
)

// RecordCacheResult records a hit or miss on the named cache.
func RecordCacheResult(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheResultTotal.WithLabelValues(cache, result).Inc()
}

// IncCacheError records a failed backend operation.
func IncCacheError(backend, op string) {
	cacheErrorsTotal.WithLabelValues(backend, op).Inc()
}

// IncPageCachePurge records one purge of the rendered page cache.
func IncPageCachePurge() {
	pageCachePurges.Inc()
}
