package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"

	"github.com/google/uuid"
)

type AuthorRepo struct{ t *table[*entity.Author] }

func NewAuthorRepo() repository.AuthorRepository {
	return &AuthorRepo{t: newTable((*entity.Author).ID)}
}

func (repo *AuthorRepo) List(_ context.Context) ([]*entity.Author, error) {
	return repo.t.all(), nil
}

func (repo *AuthorRepo) Get(_ context.Context, id uuid.UUID) (*entity.Author, error) {
	a, ok := repo.t.get(id)
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (repo *AuthorRepo) FindByName(_ context.Context, name string) ([]*entity.Author, error) {
	return repo.t.filter(func(a *entity.Author) bool { return a.Name() == name }), nil
}

func (repo *AuthorRepo) Create(_ context.Context, author *entity.Author) error {
	if author == nil {
		return fmt.Errorf("Create: nil author: %w", entity.ErrInvalidInput)
	}
	if err := repo.t.insert(author); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
