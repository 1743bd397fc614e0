// Package catalog provides use cases for the author/magazine catalog.
// It registers entities, publishes articles between them, applies the entity
// setters, and builds read-only reports over the graph.
package catalog

import (
	"fmt"

	"magazine-catalog/internal/domain/entity"
)

// Sentinel errors for catalog use case operations.
// Each wraps entity.ErrNotFound.
var (
	// ErrAuthorNotFound indicates that no author has the requested ID.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)

	// ErrMagazineNotFound indicates that no magazine has the requested ID.
	ErrMagazineNotFound = fmt.Errorf("magazine: %w", entity.ErrNotFound)

	// ErrArticleNotFound indicates that no article has the requested ID.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
)
