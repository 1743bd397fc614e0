package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"

	"github.com/google/uuid"
)

type MagazineRepo struct{ t *table[*entity.Magazine] }

func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{t: newTable((*entity.Magazine).ID)}
}

func (repo *MagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	return repo.t.all(), nil
}

func (repo *MagazineRepo) Get(_ context.Context, id uuid.UUID) (*entity.Magazine, error) {
	m, ok := repo.t.get(id)
	if !ok {
		return nil, nil
	}
	return m, nil
}

// FindByName compares against the current name, so a renamed magazine is found by its new name only.
func (repo *MagazineRepo) FindByName(_ context.Context, name string) ([]*entity.Magazine, error) {
	return repo.t.filter(func(m *entity.Magazine) bool { return m.Name() == name }), nil
}

func (repo *MagazineRepo) Create(_ context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return fmt.Errorf("Create: nil magazine: %w", entity.ErrInvalidInput)
	}
	if err := repo.t.insert(magazine); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
