// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prerenderPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_prerender_pages_total",
		Help: "Documents written by the static generator by kind",
	}, []string{"kind"}) // kind=page|post|sitemap

	prerenderSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_prerender_skipped_total",
		Help: "Routes the static generator skipped by reason",
	}, []string{"reason"})

	prerenderLastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fecauca_prerender_last_run_timestamp_seconds",
		Help: "Unix time of the last completed generation run",
	})
)

// IncPrerenderPage records a written document.
func IncPrerenderPage(kind string) {
	prerenderPagesTotal.WithLabelValues(kind).Inc()
}

// IncPrerenderSkipped records a skipped route.
func IncPrerenderSkipped(reason string) {
	prerenderSkippedTotal.WithLabelValues(reason).Inc()
}

// MarkPrerenderRun stamps the completion time of a run.
func MarkPrerenderRun() {
	prerenderLastRun.SetToCurrentTime()
}
