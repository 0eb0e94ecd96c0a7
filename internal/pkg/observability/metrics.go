package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dispatch", Name: "offers_total", Help: "Ride offers by outcome (accepted, declined, timeout, disconnect)"},
		[]string{"outcome"},
	)
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dispatch", Name: "attempts_total", Help: "Dispatch attempts by outcome (matched, no_match)"},
		[]string{"outcome"},
	)
	DispatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{Namespace: "dispatch", Name: "attempt_latency_seconds", Help: "End-to-end dispatch attempt latency"})

	RelayForwardsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "relay_forwards_total", Help: "Location updates forwarded between ride parties"})
	RelayDropsTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "relay_drops_total", Help: "Location updates dropped for missing relay sessions"})

	QueuedDrivers = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "dispatch", Name: "queued_drivers", Help: "Drivers currently queued across all stands"})
)
