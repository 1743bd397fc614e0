// Package observability groups the logging, metrics and tracing infrastructure
// used by the catalog.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors for catalog operations
//   - tracing: OpenTelemetry spans around catalog use cases
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.Options{Level: "info", Format: "json"})
//	    logger.Info("application started")
//
//	    metrics.RecordArticlePublished("Fashion")
//	}
package observability
