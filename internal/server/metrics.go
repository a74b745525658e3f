package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "reckon.dev/pkg/reckon/internal/model"
)

var (
	// evaluations counts computed terms by kind.
	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reckon",
		Name:      "evaluations_total",
		Help:      "Terms evaluated, by kind",
	}, []string{"kind"})

	// evalErrors counts terms and jobs that failed.
	evalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reckon",
		Name:      "eval_errors_total",
		Help:      "Failed evaluations",
	})

	// wsClients tracks currently connected websocket clients.
	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "reckon",
		Name:      "ws_clients",
		Help:      "Connected websocket clients",
	})

	// evalSeconds observes per-term computation time.
	evalSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "reckon",
		Name:      "eval_seconds",
		Help:      "Per term evaluation time in seconds",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
)

// recordEvaluation updates the metrics for one computed term.
func recordEvaluation(result m.TermResult) {
	evaluations.WithLabelValues(string(result.Kind)).Inc()
	evalSeconds.Observe(result.Elapsed.Seconds())

	if result.Status == m.TermError {
		evalErrors.Inc()
	}
}
