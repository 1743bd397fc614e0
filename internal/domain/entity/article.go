// Package entity defines the core domain entities and validation logic for the application.
// It contains the author/magazine graph, with Article as the edge joining one Author
// to one Magazine, along with the validation rules and domain-specific errors.
package entity

import "github.com/google/uuid"

// Article represents a titled piece written by an Author for a Magazine.
// Creating one links it into both endpoints' article collections.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle validates its arguments and registers the new article with both
// the author and the magazine. Nothing is linked when validation fails.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	return NewArticleWith(author, magazine, title, nil)
}

// NewArticleWith is NewArticle with a hook that runs after validation and
// before the article is linked. If register returns an error, neither
// endpoint is touched and that error is returned unchanged.
func NewArticleWith(author *Author, magazine *Magazine, title string, register func(*Article) error) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Field: "magazine", Message: "is required"}
	}
	if err := ValidateLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength); err != nil {
		return nil, err
	}

	art := &Article{
		id:       uuid.New(),
		title:    title,
		author:   author,
		magazine: magazine,
	}
	if register != nil {
		if err := register(art); err != nil {
			return nil, err
		}
	}
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	return art, nil
}

// ID returns the article's stable identity.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article title.
func (a *Article) Title() string { return a.title }

// Author returns the current author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the current magazine.
func (a *Article) Magazine() *Magazine { return a.magazine }

// SetAuthor replaces the author reference.
//
// Only the field changes: the article stays in the previous author's
// collection and is not added to the new author's.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	a.author = author
	return nil
}

// SetMagazine replaces the magazine reference. Like SetAuthor, neither
// magazine's collection is touched.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if magazine == nil {
		return &ValidationError{Field: "magazine", Message: "is required"}
	}
	a.magazine = magazine
	return nil
}
