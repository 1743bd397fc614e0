// Package memory implements the repository interfaces over in-process slices.
// Nothing is persisted and the tables are not safe for concurrent use.
package memory

import (
	"fmt"

	"magazine-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// table keeps rows in insertion order with an ID index.
type table[T any] struct {
	rows  []T
	index map[uuid.UUID]int
	idOf  func(T) uuid.UUID
}

func newTable[T any](idOf func(T) uuid.UUID) *table[T] {
	return &table[T]{index: make(map[uuid.UUID]int), idOf: idOf}
}

func (t *table[T]) insert(row T) error {
	id := t.idOf(row)
	if _, ok := t.index[id]; ok {
		return fmt.Errorf("id %s already stored: %w", id, entity.ErrInvalidInput)
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
	return nil
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

func (t *table[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) all() []T {
	return append(make([]T, 0, len(t.rows)), t.rows...)
}
