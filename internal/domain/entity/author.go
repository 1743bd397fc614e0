package entity

import "github.com/google/uuid"

// Author is a writer node in the graph. Its article list is filled only by NewArticle.
type Author struct {
	id       uuid.UUID
	name     string
	articles []*Article
}

// NewAuthor returns an Author with the given name, which must be non-empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateRequired("name", name); err != nil {
		return nil, err
	}
	return &Author{id: uuid.New(), name: name}, nil
}

// ID returns the author's stable identity. Two authors may share a name but never an ID.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Articles returns the author's articles in creation order.
func (a *Author) Articles() []*Article {
	return append([]*Article(nil), a.articles...)
}

// Magazines returns each magazine the author has written for, once.
func (a *Author) Magazines() []*Magazine {
	mags := make([]*Magazine, 0, len(a.articles))
	for _, art := range a.articles {
		mags = append(mags, art.magazine)
	}
	return distinct(mags, (*Magazine).ID)
}

// AddArticle creates an Article by this author in m.
func (a *Author) AddArticle(m *Magazine, title string) (*Article, error) {
	return NewArticle(a, m, title)
}

// TopicAreas returns the distinct categories of the magazines the author has written for.
func (a *Author) TopicAreas() []string {
	cats := make([]string, 0, len(a.articles))
	for _, art := range a.articles {
		cats = append(cats, art.magazine.category)
	}
	return distinct(cats, func(c string) string { return c })
}
