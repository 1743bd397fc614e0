package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

type AuthorRepository interface {
	List(ctx context.Context) ([]*entity.Author, error)
	// Get returns (nil, nil) if the author is not found.
	Get(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	// FindByName returns all authors with exactly this name. Names are not unique.
	FindByName(ctx context.Context, name string) ([]*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
}
