package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Searches      *prometheus.CounterVec
	SearchResults prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcore_catalog_searches_total",
			Help: "Total number of catalog searches, labeled by whether a text query was given",
		}, []string{"filtered"}),
		SearchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitcore_catalog_search_results",
			Help:    "Number of products returned per catalog search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		}),
	}
}

func (m *Metrics) ObserveSearch(filtered bool, results int) {
	label := "false"
	if filtered {
		label = "true"
	}
	m.Searches.WithLabelValues(label).Inc()
	m.SearchResults.Observe(float64(results))
}
