package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	exportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cvstudio",
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "End-to-end export pipeline latency in seconds.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"kind", "status"},
	)

	exportTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvstudio",
			Subsystem: "export",
			Name:      "total",
			Help:      "Total number of export attempts.",
		},
		[]string{"kind", "status"},
	)
)

// ObserveExport records one finished export attempt. The instruments
// are registered together with the HTTP ones in GinMiddleware.
func ObserveExport(kind, status string, elapsed time.Duration) {
	labels := prometheus.Labels{"kind": kind, "status": status}
	exportDuration.With(labels).Observe(elapsed.Seconds())
	exportTotal.With(labels).Inc()
}
