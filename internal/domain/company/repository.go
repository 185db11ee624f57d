package company

import (
	"context"

	"corpsite/internal/store"
)

// Repository handles the company profile singleton and the page documents.
type Repository struct {
	store store.Store
}

// NewRepository creates company repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// GetProfile returns nil when the singleton has never been written.
func (r *Repository) GetProfile(ctx context.Context) (*Profile, error) {
	doc, err := r.store.Get(ctx, store.CompanyProfiles, ProfileDocID)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// SaveProfile merges the supplied fields into the singleton, creating it on
// first write.
func (r *Repository) SaveProfile(ctx context.Context, fields map[string]any) error {
	return r.store.Set(ctx, store.CompanyProfiles, ProfileDocID, fields)
}

// GetPage returns the raw page document (schema-less marketing copy) keyed by
// page name, or nil when absent.
func (r *Repository) GetPage(ctx context.Context, name string) (map[string]any, error) {
	doc, err := r.store.Get(ctx, store.Pages, name)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Fields, nil
}

// SavePage merges page content under its fixed name.
func (r *Repository) SavePage(ctx context.Context, name string, fields map[string]any) error {
	return r.store.Set(ctx, store.Pages, name, fields)
}
