package dashboard

import (
	"context"

	"corpsite/internal/domain/contact"
	"corpsite/internal/store"
)

// Counts summarizes content volume for the admin landing page
type Counts struct {
	SubCompanies       int `json:"sub_companies"`
	Divisions          int `json:"divisions"`
	Benefits           int `json:"benefits"`
	GalleryItems       int `json:"gallery_items"`
	NewsArticles       int `json:"news_articles"`
	Organizations      int `json:"organizations"`
	Projects           int `json:"projects"`
	ContactSubmissions int `json:"contact_submissions"`
	NewSubmissions     int `json:"new_submissions"`
}

// Repository aggregates counts across collections
type Repository struct {
	store store.Store
}

// NewRepository creates dashboard repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// GetCounts reads every content collection and tallies document totals
func (r *Repository) GetCounts(ctx context.Context) (*Counts, error) {
	counts := &Counts{}

	collections := []struct {
		name string
		dst  *int
	}{
		{store.SubCompanies, &counts.SubCompanies},
		{store.Divisions, &counts.Divisions},
		{store.Benefits, &counts.Benefits},
		{store.Gallery, &counts.GalleryItems},
		{store.News, &counts.NewsArticles},
		{store.Organizations, &counts.Organizations},
		{store.Projects, &counts.Projects},
		{store.ContactSubmissions, &counts.ContactSubmissions},
	}
	for _, col := range collections {
		docs, err := r.store.List(ctx, col.name)
		if err != nil {
			return nil, err
		}
		*col.dst = len(docs)
	}

	newDocs, err := r.store.List(ctx, store.ContactSubmissions, store.Eq("status", contact.StatusNew))
	if err != nil {
		return nil, err
	}
	counts.NewSubmissions = len(newDocs)

	return counts, nil
}
