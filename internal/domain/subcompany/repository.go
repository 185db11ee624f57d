package subcompany

import (
	"context"

	"corpsite/internal/pkg/slug"
	"corpsite/internal/store"
)

// Repository handles sub-company data access
type Repository struct {
	store store.Store
}

// NewRepository creates sub-company repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// GetAll returns every sub-company. Collections stay small (tens of items),
// so there is deliberately no pagination.
func (r *Repository) GetAll(ctx context.Context) ([]*SubCompany, error) {
	docs, err := r.store.List(ctx, store.SubCompanies)
	if err != nil {
		return nil, err
	}
	out := make([]*SubCompany, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

// GetByID returns nil (not an error) when the id does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*SubCompany, error) {
	doc, err := r.store.Get(ctx, store.SubCompanies, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// GetBySlug returns the sub-company with the persisted slug, nil if none.
func (r *Repository) GetBySlug(ctx context.Context, s string) (*SubCompany, error) {
	docs, err := r.store.List(ctx, store.SubCompanies, store.Eq("slug", s))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decode(docs[0]), nil
}

// ResolveSlug resolves a public route parameter. Stored slugs are the keyed
// fast path; documents created before slugs were persisted fall back to a
// derived-slug scan where the first match wins.
func (r *Repository) ResolveSlug(ctx context.Context, s string) (*SubCompany, error) {
	sc, err := r.GetBySlug(ctx, s)
	if err != nil || sc != nil {
		return sc, err
	}

	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, candidate := range all {
		if candidate.Slug == "" && slug.Make(candidate.Name) == s {
			return candidate, nil
		}
	}
	return nil, nil
}

// Create persists a new sub-company with its slug computed from the name.
// Fails with ErrSlugTaken when another sub-company already owns that slug.
func (r *Repository) Create(ctx context.Context, sc *SubCompany) (*SubCompany, error) {
	sc.Slug = slug.Make(sc.Name)
	taken, err := r.slugTaken(ctx, sc.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	doc, err := r.store.Create(ctx, store.SubCompanies, map[string]any{
		"name":         sc.Name,
		"slug":         sc.Slug,
		"description":  sc.Description,
		"logo":         sc.Logo,
		"email":        sc.Email,
		"mobile_phone": sc.MobilePhone,
		"address":      sc.Address,
		"facebook":     sc.Facebook,
		"instagram":    sc.Instagram,
		"tiktok":       sc.TikTok,
		"youtube":      sc.YouTube,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// Update merges only the supplied fields. A name change recomputes the slug
// and re-checks uniqueness before writing.
func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	if name, ok := fields["name"].(string); ok {
		newSlug := slug.Make(name)
		taken, err := r.slugTaken(ctx, newSlug, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlugTaken
		}
		fields["slug"] = newSlug
	}

	err := r.store.Update(ctx, store.SubCompanies, id, fields)
	if err == store.ErrNotFound {
		return ErrNotFound
	}
	return err
}

// Delete removes the document unconditionally. Divisions and benefits that
// reference it are left orphaned; callers render them with a fallback label.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.SubCompanies, id)
}

func (r *Repository) slugTaken(ctx context.Context, s, excludeID string) (bool, error) {
	docs, err := r.store.List(ctx, store.SubCompanies, store.Eq("slug", s))
	if err != nil {
		return false, err
	}
	for _, doc := range docs {
		if doc.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
