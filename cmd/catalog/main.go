// Command catalog builds an author/magazine catalog from a YAML seed file and
// prints a JSON report of its derived queries.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/infra/seed"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
	catUC "magazine-catalog/internal/usecase/catalog"
	"magazine-catalog/pkg/config"
)

// Report is the document written to stdout.
type Report struct {
	Magazines       []*catUC.MagazineReport `json:"magazines"`
	Authors         []*catUC.AuthorReport   `json:"authors"`
	ProlificAuthors []catUC.Ref             `json:"prolific_authors"`
}

func main() {
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// stdout carries the report, so logs go to stderr
	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(logger)

	shutdownTracer := tracing.InitTracer(logger)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	svc := &catUC.Service{
		Authors:   memory.NewAuthorRepo(),
		Magazines: memory.NewMagazineRepo(),
		Articles:  memory.NewArticleRepo(),
		Logger:    logger,
	}

	if err := loadSeed(ctx, svc, cfg.SeedFile); err != nil {
		logger.Error("failed to load seed", slog.String("path", cfg.SeedFile), slog.Any("error", err))
		os.Exit(1)
	}

	if err := writeReport(ctx, os.Stdout, svc); err != nil {
		logger.Error("failed to write report", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.MetricsEnabled {
		return
	}

	server := startMetricsServer(logger, cfg.MetricsPort)
	<-ctx.Done()
	waitForShutdown(server, logger, cfg.ShutdownTimeout)
}

func loadSeed(ctx context.Context, svc *catUC.Service, path string) error {
	doc, err := seed.LoadFile(path)
	if err != nil {
		return err
	}

	res, err := seed.Apply(ctx, svc, doc)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("seed loaded",
		slog.String("path", path),
		slog.Int("authors", len(res.Authors)),
		slog.Int("magazines", len(res.Magazines)),
		slog.Int("articles", len(res.Articles)))
	return nil
}

func buildReport(ctx context.Context, svc *catUC.Service) (*Report, error) {
	report := &Report{}

	magazines, err := svc.ListMagazines(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range magazines {
		r, err := svc.MagazineReport(ctx, m.ID())
		if err != nil {
			return nil, err
		}
		report.Magazines = append(report.Magazines, r)
	}

	authors, err := svc.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range authors {
		r, err := svc.AuthorReport(ctx, a.ID())
		if err != nil {
			return nil, err
		}
		report.Authors = append(report.Authors, r)
	}

	prolific, err := svc.ProlificAuthors(ctx)
	if err != nil {
		return nil, err
	}
	report.ProlificAuthors = make([]catUC.Ref, 0, len(prolific))
	for _, a := range prolific {
		report.ProlificAuthors = append(report.ProlificAuthors, catUC.Ref{ID: a.ID(), Name: a.Name()})
	}

	return report, nil
}

func writeReport(ctx context.Context, w io.Writer, svc *catUC.Service) error {
	report, err := buildReport(ctx, svc)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
