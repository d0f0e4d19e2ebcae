// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	circuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fecauca_circuit_breaker_state",
		Help: "Circuit breaker state, 1 for the current state of each breaker",
	}, []string{"name", "state"})

	circuitBreakerTrips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fecauca_circuit_breaker_trips_total",
		Help: "Transitions into the open state",
	}, []string{"name", "reason"})
)

var breakerStates = []string{"closed", "open", "half-open"}

// SetCircuitBreakerState marks state as current for breaker name.
func SetCircuitBreakerState(name, state string) {
	for _, s := range breakerStates {
		v := 0.0
		if s == state {
			v = 1
		}
		circuitBreakerState.WithLabelValues(name, s).Set(v)
	}
}

// RecordCircuitBreakerTrip counts one trip of breaker name.
func RecordCircuitBreakerTrip(name, reason string) {
	circuitBreakerTrips.WithLabelValues(name, reason).Inc()
}
