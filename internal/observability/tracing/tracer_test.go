package tracing

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	_, span := StartSpan(context.Background(), "catalog.Publish", attribute.String("title", "How to Knit"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "catalog.Publish", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("title", "How to Knit"))
}

func TestRecordError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	_, failed := StartSpan(context.Background(), "failed")
	RecordError(failed, errors.New("boom"))
	failed.End()

	_, ok := StartSpan(context.Background(), "ok")
	RecordError(ok, nil)
	ok.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "boom", spans[0].Status.Description)
	assert.Equal(t, codes.Unset, spans[1].Status.Code)
}

func TestInitTracer_LogsSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	shutdown := InitTracer(logger)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	_, span := StartSpan(context.Background(), "catalog.RegisterAuthor", attribute.String("name", "Amy"))
	span.End()
	require.NoError(t, shutdown(context.Background()))

	output := buf.String()
	assert.Contains(t, output, "span finished")
	assert.Contains(t, output, "catalog.RegisterAuthor")
	assert.Contains(t, output, `"name":"Amy"`)
}
