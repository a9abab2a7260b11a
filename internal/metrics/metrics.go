package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copilot_generations_total",
			Help: "Total number of Gemini-backed operations by outcome",
		},
		[]string{"operation", "status", "reason"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copilot_generation_duration_seconds",
			Help:    "Duration of Gemini-backed operations in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"operation"},
	)
)

func ObserveGeneration(operation, status, reason string, elapsed time.Duration) {
	GenerationsTotal.WithLabelValues(operation, status, reason).Inc()
	GenerationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
