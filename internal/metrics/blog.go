// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics holds the Prometheus collectors of the site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blogFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_blog_fetch_total",
		Help: "Blog sheet fetches by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	blogFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fecauca_blog_fetch_duration_seconds",
		Help:    "Duration of blog sheet fetches including CSV parsing",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	blogFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_blog_fallback_total",
		Help: "Times the built-in post list was served instead of the sheet",
	}, []string{"reason"})

	blogPosts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fecauca_blog_posts",
		Help: "Number of posts in the current list",
	})

	blogUsingFallback = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fecauca_blog_using_fallback",
		Help: "Whether the current list is the built-in fallback (1) or the sheet (0)",
	})

	blogLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fecauca_blog_last_success_timestamp_seconds",
		Help: "Unix time of the last successful sheet load",
	})
)

// RecordBlogFetch records one sheet fetch.
func RecordBlogFetch(success bool, d time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	blogFetchTotal.WithLabelValues(outcome).Inc()
	blogFetchDuration.Observe(d.Seconds())
	if success {
		blogLastSuccess.SetToCurrentTime()
	}
}

// RecordBlogFallback records that the fallback list was served.
func RecordBlogFallback(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	blogFallbackTotal.WithLabelValues(reason).Inc()
}

// SetBlogPosts publishes the size and origin of the current list.
func SetBlogPosts(count int, fallback bool) {
	blogPosts.Set(float64(count))
	if fallback {
		blogUsingFallback.Set(1)
	} else {
		blogUsingFallback.Set(0)
	}
}
