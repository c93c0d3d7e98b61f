package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisRequests counts analysis requests by catalog kind and outcome.
	AnalysisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "afh_analysis_requests_total",
		Help: "Analysis requests processed, by catalog kind and outcome.",
	}, []string{"kind", "outcome"})

	// LLMFailures counts strategic-fit calls that degraded to the default score.
	LLMFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "afh_llm_failures_total",
		Help: "Strategic-fit LLM calls that failed or returned unparseable output.",
	})

	// AnalysisDuration tracks end-to-end analysis latency by catalog kind.
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "afh_analysis_duration_seconds",
		Help:    "End-to-end analysis duration by catalog kind.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)
