// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	busPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_bus_published_total",
		Help: "Messages published on the in-memory bus",
	}, []string{"topic"})

	busDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_bus_dropped_total",
		Help: "In-memory bus message drops by topic and reason",
	}, []string{"topic", "reason"})
)

// IncBusPublished records a published message.
func IncBusPublished(topic string) {
	if topic == "" {
		topic = "unknown"
	}
	busPublishedTotal.WithLabelValues(topic).Inc()
}

// IncBusDrop records a message dropped because a subscriber buffer was full.
func IncBusDrop(topic string) {
	IncBusDropReason(topic, "full")
}

// IncBusDropReason records a dropped bus message with a concrete reason.
func IncBusDropReason(topic, reason string) {
	if topic == "" {
		topic = "unknown"
	}
	if reason == "" {
		reason = "unknown"
	}
	busDroppedTotal.WithLabelValues(topic, reason).Inc()
}
