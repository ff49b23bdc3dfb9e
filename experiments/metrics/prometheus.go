package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchNodes counts positions visited by searches.
	// Labels: agent
	searchNodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jump61",
		Subsystem: "search",
		Name:      "nodes_total",
		Help:      "Total positions visited by minimax searches",
	}, []string{"agent"})

	// searchCutoffs counts alpha-beta cutoffs.
	// Labels: agent
	searchCutoffs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jump61",
		Subsystem: "search",
		Name:      "cutoffs_total",
		Help:      "Total alpha-beta cutoffs",
	}, []string{"agent"})

	// searchDuration measures the time taken to choose one move.
	// Labels: agent
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jump61",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Time to choose a move in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"agent"})

	// gamesPlayed counts finished games.
	// Labels: winner (red, blue, none)
	gamesPlayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jump61",
		Subsystem: "engine",
		Name:      "games_total",
		Help:      "Total games played by winner",
	}, []string{"winner"})
)

type prometheusCollector struct {
	Collector
	agent string
}

// NewPrometheusCollector wraps inner and exports each completed search under
// the agent label.
func NewPrometheusCollector(agent string, inner Collector) Collector {
	return &prometheusCollector{Collector: inner, agent: agent}
}

func (m *prometheusCollector) Complete(score int) SearchMetric {
	metric := m.Collector.Complete(score)
	searchNodes.WithLabelValues(m.agent).Add(float64(metric.Nodes))
	searchCutoffs.WithLabelValues(m.agent).Add(float64(metric.Cutoffs))
	searchDuration.WithLabelValues(m.agent).Observe(metric.Duration.Seconds())
	return metric
}

// RecordGame counts a finished game. An empty winner is recorded as "none".
func RecordGame(winner string) {
	if winner == "" {
		winner = "none"
	}
	gamesPlayed.WithLabelValues(winner).Inc()
}
