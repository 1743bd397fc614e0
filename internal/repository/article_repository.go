package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

type ArticleRepository interface {
	// List returns every stored article in insertion order.
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	// ListByAuthor returns the stored articles whose current author has the given ID.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
}
