package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the analyzer pipeline, exposed on the /metrics
// endpoint of the health server.

var (
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "indicator_compute_duration_seconds",
			Help: "Duration of indicator series computations in seconds",
		},
		[]string{"symbol"},
	)

	ComputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indicator_compute_total",
			Help: "Total number of indicator series computations",
		},
		[]string{"symbol", "status"},
	)

	SnapshotsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indicator_snapshots_published_total",
			Help: "Total number of indicator snapshots published downstream",
		},
		[]string{"symbol", "status"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "market_data_fetch_duration_seconds",
			Help: "Duration of market data history fetches in seconds",
		},
		[]string{"provider", "symbol"},
	)
)
