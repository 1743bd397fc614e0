package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

type MagazineRepository interface {
	List(ctx context.Context) ([]*entity.Magazine, error)
	// Get returns (nil, nil) if the magazine is not found.
	Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error)
	// FindByName matches the magazine's current name, which can change through SetName.
	FindByName(ctx context.Context, name string) ([]*entity.Magazine, error)
	Create(ctx context.Context, magazine *entity.Magazine) error
}
