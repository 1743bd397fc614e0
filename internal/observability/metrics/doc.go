// Package metrics provides Prometheus collectors and recording helpers for the catalog.
//
// Collected metrics:
//   - Graph size gauges (authors, magazines, articles)
//   - Published article counter by magazine category
//   - Validation failure counter by operation and field
//   - Catalog operation duration histogram
//
// All metrics are registered with the Prometheus default registry through promauto
// and exposed by the catalog command's /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	art, err := author.AddArticle(magazine, title)
//	metrics.RecordOperationDuration("publish", time.Since(start))
//	if err != nil {
//	    metrics.RecordValidationFailure("publish", err)
//	}
package metrics
