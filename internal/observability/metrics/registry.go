package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Graph size metrics reflect the current contents of the catalog
var (
	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_authors_total",
			Help: "Number of authors registered in the catalog",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Number of magazines registered in the catalog",
		},
	)

	// ArticlesTotal tracks the number of published articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Number of articles published in the catalog",
		},
	)
)

// Operation metrics track catalog use case activity
var (
	// ArticlesPublishedTotal counts successfully published articles by magazine category
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_articles_published_total",
			Help: "Total number of articles published, by magazine category",
		},
		[]string{"category"},
	)

	// ValidationFailuresTotal counts rejected inputs by operation and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of validation failures, by operation and field",
		},
		[]string{"operation", "field"},
	)

	// OperationDuration measures catalog use case latency in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Duration of catalog operations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		},
		[]string{"operation"},
	)
)
