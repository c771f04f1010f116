package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	suggestionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reclaim",
			Name:      "suggestion_requests_total",
			Help:      "Total number of suggestion rankings",
		},
		[]string{"type", "status"},
	)

	suggestionRankDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reclaim",
			Name:      "suggestion_rank_duration_seconds",
			Help:      "Time spent ranking a candidate pool",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"type"},
	)

	suggestionPoolSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reclaim",
			Name:      "suggestion_pool_size",
			Help:      "Number of candidates considered per ranking",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"type"},
	)

	suggestionResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reclaim",
			Name:      "suggestion_results",
			Help:      "Number of suggestions returned per ranking",
			Buckets:   []float64{0, 1, 2, 5, 10, 20},
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(suggestionRequestsTotal)
	prometheus.MustRegister(suggestionRankDuration)
	prometheus.MustRegister(suggestionPoolSize)
	prometheus.MustRegister(suggestionResults)
}

// records one ranking of a source of the given kind
func ObserveSuggestion(kind string, poolSize, results int, took time.Duration, err error) {
	if err != nil {
		suggestionRequestsTotal.WithLabelValues(kind, "error").Inc()
		return
	}

	suggestionRequestsTotal.WithLabelValues(kind, "ok").Inc()
	suggestionRankDuration.WithLabelValues(kind).Observe(took.Seconds())
	suggestionPoolSize.WithLabelValues(kind).Observe(float64(poolSize))
	suggestionResults.WithLabelValues(kind).Observe(float64(results))
}
