package benefit

import (
	"context"

	"corpsite/internal/domain/subcompany"
	"corpsite/internal/store"
)

const fallbackParentLabel = "—"

// Repository handles benefit data access
type Repository struct {
	store store.Store
	subs  *subcompany.Repository
}

// NewRepository creates benefit repository
func NewRepository(s store.Store, subs *subcompany.Repository) *Repository {
	return &Repository{store: s, subs: subs}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Benefit, error) {
	docs, err := r.store.List(ctx, store.Benefits)
	if err != nil {
		return nil, err
	}
	out := make([]*Benefit, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Benefit, error) {
	doc, err := r.store.Get(ctx, store.Benefits, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) GetBySubCompany(ctx context.Context, subCompanyID string) ([]*Benefit, error) {
	docs, err := r.store.List(ctx, store.Benefits, store.Eq("sub_company_id", subCompanyID))
	if err != nil {
		return nil, err
	}
	out := make([]*Benefit, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, b *Benefit) (*Benefit, error) {
	doc, err := r.store.Create(ctx, store.Benefits, map[string]any{
		"name":           b.Name,
		"description":    b.Description,
		"icon":           b.Icon,
		"sub_company_id": b.SubCompanyID,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.Benefits, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Benefits, id)
}

// ParentName resolves the owning sub-company's name, falling back to a safe
// label for orphans.
func (r *Repository) ParentName(ctx context.Context, b *Benefit) string {
	if b.SubCompanyID == "" {
		return fallbackParentLabel
	}
	parent, err := r.subs.GetByID(ctx, b.SubCompanyID)
	if err != nil || parent == nil {
		return fallbackParentLabel
	}
	return parent.Name
}
