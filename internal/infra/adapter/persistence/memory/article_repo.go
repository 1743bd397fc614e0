package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"

	"github.com/google/uuid"
)

type ArticleRepo struct{ t *table[*entity.Article] }

func NewArticleRepo() repository.ArticleRepository {
	return &ArticleRepo{t: newTable((*entity.Article).ID)}
}

func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	return repo.t.all(), nil
}

func (repo *ArticleRepo) Get(_ context.Context, id uuid.UUID) (*entity.Article, error) {
	art, ok := repo.t.get(id)
	if !ok {
		return nil, nil
	}
	return art, nil
}

// ListByAuthor matches on the article's current author, which may differ from
// the author whose collection first received it.
func (repo *ArticleRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]*entity.Article, error) {
	return repo.t.filter(func(art *entity.Article) bool { return art.Author().ID() == authorID }), nil
}

func (repo *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	if article == nil {
		return fmt.Errorf("Create: nil article: %w", entity.ErrInvalidInput)
	}
	if err := repo.t.insert(article); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
