package project

import (
	"context"

	"corpsite/internal/pkg/slug"
	"corpsite/internal/store"
)

// Repository handles project data access
type Repository struct {
	store store.Store
}

// NewRepository creates project repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Project, error) {
	docs, err := r.store.List(ctx, store.Projects)
	if err != nil {
		return nil, err
	}
	out := make([]*Project, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Project, error) {
	doc, err := r.store.Get(ctx, store.Projects, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) GetBySlug(ctx context.Context, s string) (*Project, error) {
	docs, err := r.store.List(ctx, store.Projects, store.Eq("slug", s))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decode(docs[0]), nil
}

// GetFeatured returns projects flagged for the homepage.
func (r *Repository) GetFeatured(ctx context.Context) ([]*Project, error) {
	docs, err := r.store.List(ctx, store.Projects, store.Eq("featured", true))
	if err != nil {
		return nil, err
	}
	out := make([]*Project, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, p *Project) (*Project, error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	doc, err := r.store.Create(ctx, store.Projects, map[string]any{
		"title":          p.Title,
		"slug":           p.Slug,
		"category":       p.Category,
		"status":         p.Status,
		"location":       p.Location,
		"description":    p.Description,
		"thumbnail":      p.Thumbnail,
		"featured":       p.Featured,
		"images":         p.Images,
		"features":       encodeFeatures(p.Features),
		"specifications": encodeSpecifications(p.Specifications),
		"units":          p.Units,
		"type":           p.Type,
		"gradient":       p.Gradient,
		"content":        p.Content,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.Projects, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Projects, id)
}
