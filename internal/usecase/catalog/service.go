package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// PublishInput represents the input parameters for publishing an article.
type PublishInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// Service provides catalog use cases.
// Entities live in the repositories; the relationships between them live in
// the entities themselves.
type Service struct {
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
	Articles  repository.ArticleRepository

	// Logger is used when set; otherwise the logger from the request context.
	Logger *slog.Logger
}

// RegisterAuthor creates and stores a new author.
// Returns a ValidationError if the name is empty.
func (s *Service) RegisterAuthor(ctx context.Context, name string) (author *entity.Author, err error) {
	ctx, done := s.begin(ctx, "register_author", attribute.String("name", name))
	defer func() { done(err) }()

	author, err = entity.NewAuthor(name)
	if err != nil {
		return nil, fmt.Errorf("register author: %w", err)
	}
	if err := s.Authors.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("register author: %w", err)
	}

	s.logger(ctx).Info("author registered",
		slog.String("author_id", author.ID().String()),
		slog.String("name", name))
	s.refreshGraphSize(ctx)
	return author, nil
}

// RegisterMagazine creates and stores a new magazine.
// Returns a ValidationError if the name or category is invalid.
func (s *Service) RegisterMagazine(ctx context.Context, name, category string) (magazine *entity.Magazine, err error) {
	ctx, done := s.begin(ctx, "register_magazine",
		attribute.String("name", name),
		attribute.String("category", category))
	defer func() { done(err) }()

	magazine, err = entity.NewMagazine(name, category)
	if err != nil {
		return nil, fmt.Errorf("register magazine: %w", err)
	}
	if err := s.Magazines.Create(ctx, magazine); err != nil {
		return nil, fmt.Errorf("register magazine: %w", err)
	}

	s.logger(ctx).Info("magazine registered",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", name),
		slog.String("category", category))
	s.refreshGraphSize(ctx)
	return magazine, nil
}

// Publish creates an article by the given author in the given magazine.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unknown IDs and a
// ValidationError if the title is invalid. The article is stored before it is
// linked, so nothing is linked on any failure, including a storage error.
func (s *Service) Publish(ctx context.Context, in PublishInput) (article *entity.Article, err error) {
	ctx, done := s.begin(ctx, "publish",
		attribute.String("author_id", in.AuthorID.String()),
		attribute.String("magazine_id", in.MagazineID.String()))
	defer func() { done(err) }()

	author, err := s.author(ctx, in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	magazine, err := s.magazine(ctx, in.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	article, err = entity.NewArticleWith(author, magazine, in.Title, func(a *entity.Article) error {
		return s.Articles.Create(ctx, a)
	})
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	metrics.RecordArticlePublished(magazine.Category())
	s.logger(ctx).Info("article published",
		slog.String("article_id", article.ID().String()),
		slog.String("title", article.Title()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()))
	s.refreshGraphSize(ctx)
	return article, nil
}

// RenameMagazine changes a magazine's name.
func (s *Service) RenameMagazine(ctx context.Context, id uuid.UUID, name string) (err error) {
	ctx, done := s.begin(ctx, "rename_magazine", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return fmt.Errorf("rename magazine: %w", err)
	}
	old := magazine.Name()
	if err := magazine.SetName(name); err != nil {
		return fmt.Errorf("rename magazine: %w", err)
	}

	s.logger(ctx).Info("magazine renamed",
		slog.String("magazine_id", id.String()),
		slog.String("from", old),
		slog.String("to", name))
	return nil
}

// Recategorize changes a magazine's category. Authors' topic areas follow
// the new category immediately.
func (s *Service) Recategorize(ctx context.Context, id uuid.UUID, category string) (err error) {
	ctx, done := s.begin(ctx, "recategorize", attribute.String("magazine_id", id.String()))
	defer func() { done(err) }()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return fmt.Errorf("recategorize: %w", err)
	}
	old := magazine.Category()
	if err := magazine.SetCategory(category); err != nil {
		return fmt.Errorf("recategorize: %w", err)
	}

	s.logger(ctx).Info("magazine recategorized",
		slog.String("magazine_id", id.String()),
		slog.String("from", old),
		slog.String("to", category))
	return nil
}

// ReassignAuthor points an article at a different author.
//
// This goes through Article.SetAuthor and keeps its behaviour: the article
// stays listed under the previous author and is not listed under the new one.
func (s *Service) ReassignAuthor(ctx context.Context, articleID, authorID uuid.UUID) (err error) {
	ctx, done := s.begin(ctx, "reassign_author",
		attribute.String("article_id", articleID.String()),
		attribute.String("author_id", authorID.String()))
	defer func() { done(err) }()

	article, err := s.article(ctx, articleID)
	if err != nil {
		return fmt.Errorf("reassign author: %w", err)
	}
	author, err := s.author(ctx, authorID)
	if err != nil {
		return fmt.Errorf("reassign author: %w", err)
	}
	if err := article.SetAuthor(author); err != nil {
		return fmt.Errorf("reassign author: %w", err)
	}

	s.logger(ctx).Warn("article author reassigned; previous author still lists it",
		slog.String("article_id", articleID.String()),
		slog.String("author_id", authorID.String()))
	return nil
}

// MoveArticle points an article at a different magazine, with the same
// collection caveat as ReassignAuthor.
func (s *Service) MoveArticle(ctx context.Context, articleID, magazineID uuid.UUID) (err error) {
	ctx, done := s.begin(ctx, "move_article",
		attribute.String("article_id", articleID.String()),
		attribute.String("magazine_id", magazineID.String()))
	defer func() { done(err) }()

	article, err := s.article(ctx, articleID)
	if err != nil {
		return fmt.Errorf("move article: %w", err)
	}
	magazine, err := s.magazine(ctx, magazineID)
	if err != nil {
		return fmt.Errorf("move article: %w", err)
	}
	if err := article.SetMagazine(magazine); err != nil {
		return fmt.Errorf("move article: %w", err)
	}

	s.logger(ctx).Warn("article magazine reassigned; previous magazine still lists it",
		slog.String("article_id", articleID.String()),
		slog.String("magazine_id", magazineID.String()))
	return nil
}

// AuthorReport returns the derived queries of one author, plus the titles of
// the stored articles whose current author it is.
func (s *Service) AuthorReport(ctx context.Context, id uuid.UUID) (*AuthorReport, error) {
	author, err := s.author(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("author report: %w", err)
	}
	current, err := s.Articles.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("author report: %w", err)
	}
	return newAuthorReport(author, current), nil
}

// CurrentArticles returns the stored articles whose author is currently id.
// After ReassignAuthor this differs from Author.Articles, which keeps the
// articles the author was created with.
func (s *Service) CurrentArticles(ctx context.Context, id uuid.UUID) ([]*entity.Article, error) {
	if _, err := s.author(ctx, id); err != nil {
		return nil, fmt.Errorf("current articles: %w", err)
	}
	articles, err := s.Articles.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("current articles: %w", err)
	}
	return articles, nil
}

// MagazineReport returns the derived queries of one magazine.
func (s *Service) MagazineReport(ctx context.Context, id uuid.UUID) (*MagazineReport, error) {
	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("magazine report: %w", err)
	}
	return newMagazineReport(magazine), nil
}

// ListAuthors returns all registered authors in registration order.
func (s *Service) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := s.Authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// ListMagazines returns all registered magazines in registration order.
func (s *Service) ListMagazines(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// FindAuthors returns the registered authors with exactly this name, in
// registration order. Author names are not unique.
func (s *Service) FindAuthors(ctx context.Context, name string) ([]*entity.Author, error) {
	authors, err := s.Authors.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	return authors, nil
}

// FindMagazines returns the registered magazines whose current name is name.
func (s *Service) FindMagazines(ctx context.Context, name string) ([]*entity.Magazine, error) {
	magazines, err := s.Magazines.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find magazines: %w", err)
	}
	return magazines, nil
}

// ProlificAuthors returns the authors that are a contributing author of at
// least one magazine, each once, in magazine registration order.
func (s *Service) ProlificAuthors(ctx context.Context) ([]*entity.Author, error) {
	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("prolific authors: %w", err)
	}

	seen := make(map[uuid.UUID]struct{})
	var out []*entity.Author
	for _, m := range magazines {
		for _, a := range m.ContributingAuthors() {
			if _, ok := seen[a.ID()]; ok {
				continue
			}
			seen[a.ID()] = struct{}{}
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) author(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := s.Authors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, fmt.Errorf("%w: %s", ErrAuthorNotFound, id)
	}
	return author, nil
}

func (s *Service) magazine(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	magazine, err := s.Magazines.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, fmt.Errorf("%w: %s", ErrMagazineNotFound, id)
	}
	return magazine, nil
}

func (s *Service) article(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}
	return article, nil
}

// begin opens a span for a mutating operation. The returned func ends it,
// records the duration, and counts and logs validation failures.
func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "catalog."+op, attrs...)

	return ctx, func(err error) {
		defer span.End()
		metrics.RecordOperationDuration(op, time.Since(start))
		if err == nil {
			return
		}
		tracing.RecordError(span, err)

		logger := logging.WithFields(s.logger(ctx), map[string]interface{}{"operation": op})
		if errors.Is(err, entity.ErrValidationFailed) {
			metrics.RecordValidationFailure(op, err)
			logger.Warn("validation failed", slog.Any("error", err))
			return
		}
		if errors.Is(err, entity.ErrNotFound) {
			logger.Warn("entity not found", slog.Any("error", err))
			return
		}
		logger.Error("catalog operation failed", slog.Any("error", err))
	}
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

// refreshGraphSize updates the size gauges. A failed count only skips the
// update; the operation that triggered it has already succeeded.
func (s *Service) refreshGraphSize(ctx context.Context) {
	authors, err := s.Authors.List(ctx)
	if err != nil {
		s.logger(ctx).Debug("failed to refresh graph size", slog.String("collection", "authors"), slog.Any("error", err))
		return
	}
	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		s.logger(ctx).Debug("failed to refresh graph size", slog.String("collection", "magazines"), slog.Any("error", err))
		return
	}
	articles, err := s.Articles.List(ctx)
	if err != nil {
		s.logger(ctx).Debug("failed to refresh graph size", slog.String("collection", "articles"), slog.Any("error", err))
		return
	}
	metrics.UpdateGraphSize(len(authors), len(magazines), len(articles))
}
