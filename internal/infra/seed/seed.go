// Package seed loads a catalog from a YAML document.
//
// A document lists authors and magazines under seed-local keys, then articles
// that refer to those keys:
//
//	authors:
//	  - key: carry
//	    name: Carry Bradshaw
//	magazines:
//	  - key: vogue
//	    name: Vogue
//	    category: Fashion
//	articles:
//	  - author: carry
//	    magazine: vogue
//	    title: How to wear a tutu with style
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"magazine-catalog/internal/domain/entity"
	catUC "magazine-catalog/internal/usecase/catalog"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingKey indicates an author or magazine entry without a key.
	ErrMissingKey = errors.New("seed entry has no key")

	// ErrDuplicateKey indicates two authors or two magazines sharing a key.
	ErrDuplicateKey = errors.New("duplicate seed key")

	// ErrUnknownKey indicates an article referring to an undeclared key.
	ErrUnknownKey = errors.New("unknown seed key")
)

// Document is the YAML seed layout.
type Document struct {
	Authors   []AuthorEntry   `yaml:"authors"`
	Magazines []MagazineEntry `yaml:"magazines"`
	Articles  []ArticleEntry  `yaml:"articles"`
}

type AuthorEntry struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type MagazineEntry struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type ArticleEntry struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Catalog is the subset of the catalog service a seed is applied through.
type Catalog interface {
	RegisterAuthor(ctx context.Context, name string) (*entity.Author, error)
	RegisterMagazine(ctx context.Context, name, category string) (*entity.Magazine, error)
	Publish(ctx context.Context, in catUC.PublishInput) (*entity.Article, error)
}

// Result maps seed keys to the IDs the catalog assigned.
type Result struct {
	Authors   map[string]uuid.UUID
	Magazines map[string]uuid.UUID
	Articles  []uuid.UUID
}

// LoadFile reads and parses the seed document at path.
func LoadFile(path string) (*Document, error) {
	// #nosec G304 -- path comes from the operator's SEED_FILE setting
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a seed document. Unknown YAML fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("seed validation failed: %w", err)
	}
	return &doc, nil
}

// Validate checks the key structure of the document. Field values are left
// to the entity constructors.
func (d *Document) Validate() error {
	authors, err := collectKeys("author", len(d.Authors), func(i int) string { return d.Authors[i].Key })
	if err != nil {
		return err
	}
	magazines, err := collectKeys("magazine", len(d.Magazines), func(i int) string { return d.Magazines[i].Key })
	if err != nil {
		return err
	}

	for i, art := range d.Articles {
		if _, ok := authors[art.Author]; !ok {
			return fmt.Errorf("articles[%d]: author %q: %w", i, art.Author, ErrUnknownKey)
		}
		if _, ok := magazines[art.Magazine]; !ok {
			return fmt.Errorf("articles[%d]: magazine %q: %w", i, art.Magazine, ErrUnknownKey)
		}
	}
	return nil
}

func collectKeys(kind string, n int, keyAt func(int) string) (map[string]struct{}, error) {
	keys := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := keyAt(i)
		if k == "" {
			return nil, fmt.Errorf("%ss[%d]: %w", kind, i, ErrMissingKey)
		}
		if _, ok := keys[k]; ok {
			return nil, fmt.Errorf("%ss[%d]: %q: %w", kind, i, k, ErrDuplicateKey)
		}
		keys[k] = struct{}{}
	}
	return keys, nil
}

// Apply registers the document's authors, magazines and articles, in that
// order and in file order within each list. It stops at the first error;
// entries applied before it stay registered.
func Apply(ctx context.Context, c Catalog, doc *Document) (*Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}

	res := &Result{
		Authors:   make(map[string]uuid.UUID, len(doc.Authors)),
		Magazines: make(map[string]uuid.UUID, len(doc.Magazines)),
		Articles:  make([]uuid.UUID, 0, len(doc.Articles)),
	}

	for i, e := range doc.Authors {
		a, err := c.RegisterAuthor(ctx, e.Name)
		if err != nil {
			return res, fmt.Errorf("apply seed: authors[%d]: %w", i, err)
		}
		res.Authors[e.Key] = a.ID()
	}

	for i, e := range doc.Magazines {
		m, err := c.RegisterMagazine(ctx, e.Name, e.Category)
		if err != nil {
			return res, fmt.Errorf("apply seed: magazines[%d]: %w", i, err)
		}
		res.Magazines[e.Key] = m.ID()
	}

	for i, e := range doc.Articles {
		art, err := c.Publish(ctx, catUC.PublishInput{
			AuthorID:   res.Authors[e.Author],
			MagazineID: res.Magazines[e.Magazine],
			Title:      e.Title,
		})
		if err != nil {
			return res, fmt.Errorf("apply seed: articles[%d]: %w", i, err)
		}
		res.Articles = append(res.Articles, art.ID())
	}

	return res, nil
}
