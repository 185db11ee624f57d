package organization

import (
	"context"
	"time"

	"corpsite/internal/store"
)

// Member is one entry on the organization page. Flat, no relations.
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Photo       string    `json:"photo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func decode(doc store.Document) *Member {
	return &Member{
		ID:          doc.ID,
		Name:        doc.String("name"),
		Description: doc.String("description"),
		Photo:       doc.String("photo"),
		CreatedAt:   doc.Time("created_at"),
		UpdatedAt:   doc.Time("updated_at"),
	}
}

// Repository handles organization member data access
type Repository struct {
	store store.Store
}

// NewRepository creates organization repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Member, error) {
	docs, err := r.store.List(ctx, store.Organizations)
	if err != nil {
		return nil, err
	}
	out := make([]*Member, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Member, error) {
	doc, err := r.store.Get(ctx, store.Organizations, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Create(ctx context.Context, m *Member) (*Member, error) {
	doc, err := r.store.Create(ctx, store.Organizations, map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"photo":       m.Photo,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.Organizations, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Organizations, id)
}
