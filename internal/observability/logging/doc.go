// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.Options{Level: "info", Format: "json"})
//	    logger.Info("application started", slog.String("seed", path))
//	}
//
//	func publish(ctx context.Context) {
//	    logger := logging.FromContext(ctx)
//	    logger.Info("publishing article")
//	}
package logging
