// Package tracing provides OpenTelemetry tracing integration.
//
// Catalog use cases open a span per operation through StartSpan. The global
// tracer provider decides where spans go: by default they are dropped, and
// InitTracer installs an SDK provider that reports finished spans to a slog
// logger.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitTracer(logger)
//	    defer shutdown(context.Background())
//	}
//
//	func publish(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "catalog.Publish")
//	    defer span.End()
//	    // ... publish ...
//	}
package tracing
