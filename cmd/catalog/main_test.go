package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	catUC "magazine-catalog/internal/usecase/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
authors:
  - key: amy
    name: Amy
  - key: bob
    name: Bob
magazines:
  - key: vogue
    name: Vogue
    category: Fashion
articles:
  - {author: amy, magazine: vogue, title: How to Knit}
  - {author: amy, magazine: vogue, title: How to Sew}
  - {author: amy, magazine: vogue, title: How to Weave}
  - {author: bob, magazine: vogue, title: Spring Looks}
`

func newTestService() *catUC.Service {
	return &catUC.Service{
		Authors:   memory.NewAuthorRepo(),
		Magazines: memory.NewMagazineRepo(),
		Articles:  memory.NewArticleRepo(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWriteReport(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := newTestService()
	require.NoError(t, loadSeed(ctx, svc, writeSeed(t, seedYAML)))

	var buf bytes.Buffer
	require.NoError(t, writeReport(ctx, &buf, svc))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	require.Len(t, report.Magazines, 1)
	vogue := report.Magazines[0]
	assert.Equal(t, "Vogue", vogue.Name)
	assert.Equal(t, []string{"How to Knit", "How to Sew", "How to Weave", "Spring Looks"}, vogue.ArticleTitles)
	assert.Len(t, vogue.Contributors, 2)
	require.Len(t, vogue.ContributingAuthors, 1)
	assert.Equal(t, "Amy", vogue.ContributingAuthors[0].Name)

	require.Len(t, report.Authors, 2)
	assert.Equal(t, []string{"Fashion"}, report.Authors[1].TopicAreas)

	require.Len(t, report.ProlificAuthors, 1)
	assert.Equal(t, "Amy", report.ProlificAuthors[0].Name)
}

func TestWriteReport_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(context.Background(), &buf, newTestService()))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["prolific_authors"]))
}

func TestLoadSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
		},
		{
			name: "invalid magazine",
			path: func(t *testing.T) string {
				return writeSeed(t, "magazines: [{key: x, name: X, category: Misc}]")
			},
		},
		{
			name: "unknown key",
			path: func(t *testing.T) string {
				return writeSeed(t, "articles: [{author: a, magazine: m, title: Hello world}]")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadSeed(context.Background(), newTestService(), tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestMetricsMux(t *testing.T) {
	mux := newMetricsMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_authors_total")
}
