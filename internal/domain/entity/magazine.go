package entity

import "github.com/google/uuid"

// ContributingThreshold is the number of articles an author must exceed in a
// magazine to count as one of its contributing authors.
const ContributingThreshold = 2

// Magazine is a publication node in the graph. Name and category may change
// after creation but always satisfy their constraints.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	articles []*Article
}

// NewMagazine returns a Magazine, or a ValidationError when the name is not
// 2 to 16 characters long or the category is empty.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := validateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateRequired("category", category); err != nil {
		return nil, err
	}
	return &Magazine{id: uuid.New(), name: name, category: category}, nil
}

func validateMagazineName(name string) error {
	return ValidateLength("name", name, MagazineNameMinLength, MagazineNameMaxLength)
}

// ID returns the magazine's stable identity.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine name.
func (m *Magazine) Name() string { return m.name }

// SetName renames the magazine. The name is left unchanged on error.
func (m *Magazine) SetName(name string) error {
	if err := validateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine category.
func (m *Magazine) Category() string { return m.category }

// SetCategory changes the category. The category is left unchanged on error.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateRequired("category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// Articles returns the magazine's articles in creation order.
func (m *Magazine) Articles() []*Article {
	return append([]*Article(nil), m.articles...)
}

// Contributors returns every author with at least one article in the magazine, once each.
func (m *Magazine) Contributors() []*Author {
	authors := make([]*Author, 0, len(m.articles))
	for _, art := range m.articles {
		authors = append(authors, art.author)
	}
	return distinct(authors, (*Author).ID)
}

// ArticleTitles returns the titles of Articles(), in the same order.
func (m *Magazine) ArticleTitles() []string {
	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than ContributingThreshold
// articles in this magazine, in the order they first appear.
//
// Articles are grouped by their current author field, so an article that was
// reassigned with SetAuthor counts toward its new author.
func (m *Magazine) ContributingAuthors() []*Author {
	counts := make(map[uuid.UUID]int, len(m.articles))
	for _, art := range m.articles {
		counts[art.author.id]++
	}

	var out []*Author
	for _, a := range m.Contributors() {
		if counts[a.id] > ContributingThreshold {
			out = append(out, a)
		}
	}
	return out
}
