// Package-level prometheus metrics for the network coordinator, following
// the promauto package-level-var registration idiom used throughout
// m-lab-tcp-info's metrics package.
package coordinator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zipgw_commands_total",
			Help: "Commands submitted to the coordinator, by outcome (admission rejections included).",
		}, []string{"outcome"})

	commandsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zipgw_commands_in_flight",
			Help: "Commands currently owned by a runner.",
		})

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zipgw_retries_total",
			Help: "Total retry sends issued across all runners.",
		})

	queuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zipgw_queued_total",
			Help: "Commands suspended awaiting sleeping-node delivery.",
		})

	modeTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zipgw_mode_transitions_total",
			Help: "Network-mode transitions, by destination mode.",
		}, []string{"mode"})

	unsolicitedPacketsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zipgw_unsolicited_packets_total",
			Help: "Inbound packets with no matching in-flight runner.",
		})
)
