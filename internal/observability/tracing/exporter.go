package tracing

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogExporter is a sdktrace.SpanExporter that writes one debug record per span.
type LogExporter struct {
	logger *slog.Logger
}

// NewLogExporter returns an exporter writing to logger.
func NewLogExporter(logger *slog.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs each span's name, status and duration.
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []slog.Attr{
			slog.String("span", s.Name()),
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("status", s.Status().Code.String()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}
		e.logger.LogAttrs(ctx, slog.LevelDebug, "span finished", attrs...)
	}
	return nil
}

// Shutdown is a no-op; the logger is owned by the caller.
func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
