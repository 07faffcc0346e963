package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "talentohub",
			Name:      "search_duration_seconds",
			Help:      "Search execution duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "talentohub",
			Name:      "search_results_total",
			Help:      "Matched documents per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	IndexedDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "talentohub",
			Name:      "indexed_documents",
			Help:      "Documents in the live index",
		},
		[]string{"content_type"},
	)

	RebuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "talentohub",
			Name:      "index_rebuild_duration_seconds",
			Help:      "Index rebuild duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
	)

	RebuildDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "talentohub",
			Name:      "index_rebuild_dropped_records_total",
			Help:      "Records dropped during rebuilds for failing validation",
		},
	)
)

// RegisterEngineMetrics registers the engine metrics explicitly (no init()).
func RegisterEngineMetrics() {
	prometheus.MustRegister(
		SearchDuration,
		SearchResults,
		IndexedDocuments,
		RebuildDuration,
		RebuildDropped,
	)
}

// ObserveSearch records one executed search.
func ObserveSearch(took time.Duration, totalResults int) {
	SearchDuration.Observe(took.Seconds())
	SearchResults.Observe(float64(totalResults))
}

// ObserveRebuild records one completed rebuild.
func ObserveRebuild(took time.Duration, dropped int) {
	RebuildDuration.Observe(took.Seconds())
	RebuildDropped.Add(float64(dropped))
}

// SetIndexedDocuments updates the per-type document gauges.
func SetIndexedDocuments(counts map[string]int) {
	for contentType, n := range counts {
		IndexedDocuments.WithLabelValues(contentType).Set(float64(n))
	}
}
