package catalog

import (
	"magazine-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// Ref identifies an entity by ID together with its display name.
type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AuthorReport is a snapshot of an author's derived queries.
type AuthorReport struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Articles   []string  `json:"articles"`
	Magazines  []Ref     `json:"magazines"`
	TopicAreas []string  `json:"topic_areas"`

	// CurrentArticles lists the stored articles whose author is currently
	// this one. It differs from Articles once an article is reassigned.
	CurrentArticles []string `json:"current_articles"`
}

// MagazineReport is a snapshot of a magazine's derived queries.
type MagazineReport struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	ArticleTitles       []string  `json:"article_titles"`
	Contributors        []Ref     `json:"contributors"`
	ContributingAuthors []Ref     `json:"contributing_authors"`
}

func newAuthorReport(a *entity.Author, current []*entity.Article) *AuthorReport {
	return &AuthorReport{
		ID:              a.ID(),
		Name:            a.Name(),
		Articles:        articleTitles(a.Articles()),
		Magazines:       magazineRefs(a.Magazines()),
		TopicAreas:      a.TopicAreas(),
		CurrentArticles: articleTitles(current),
	}
}

func articleTitles(arts []*entity.Article) []string {
	titles := make([]string, 0, len(arts))
	for _, art := range arts {
		titles = append(titles, art.Title())
	}
	return titles
}

func newMagazineReport(m *entity.Magazine) *MagazineReport {
	return &MagazineReport{
		ID:                  m.ID(),
		Name:                m.Name(),
		Category:            m.Category(),
		ArticleTitles:       m.ArticleTitles(),
		Contributors:        authorRefs(m.Contributors()),
		ContributingAuthors: authorRefs(m.ContributingAuthors()),
	}
}

func authorRefs(authors []*entity.Author) []Ref {
	refs := make([]Ref, 0, len(authors))
	for _, a := range authors {
		refs = append(refs, Ref{ID: a.ID(), Name: a.Name()})
	}
	return refs
}

func magazineRefs(mags []*entity.Magazine) []Ref {
	refs := make([]Ref, 0, len(mags))
	for _, m := range mags {
		refs = append(refs, Ref{ID: m.ID(), Name: m.Name()})
	}
	return refs
}
