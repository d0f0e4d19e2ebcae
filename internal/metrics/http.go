// SPDX-License-Identifier: MIT
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fecauca_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fecauca_http_requests_in_flight",
		Help: "HTTP requests currently being served",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fecauca_http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)

// ObserveHTTPRequest records a completed request. route must be the matched
// pattern, never the raw path.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns its release func.
func TrackInFlight() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// IncRateLimited records a request rejected by the rate limiter.
func IncRateLimited() {
	rateLimitedTotal.Inc()
}
