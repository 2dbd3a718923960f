package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var generationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "quizgen",
		Name:      "generations_total",
		Help:      "Question generation attempts by source and outcome.",
	},
	[]string{"source", "outcome"},
)

func observeGeneration(source, outcome string) {
	generationsTotal.WithLabelValues(source, outcome).Inc()
}
