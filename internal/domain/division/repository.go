package division

import (
	"context"

	"corpsite/internal/domain/subcompany"
	"corpsite/internal/store"
)

// FallbackParentLabel is rendered wherever an orphaned division's parent
// would appear.
const FallbackParentLabel = "—"

// Repository handles division data access
type Repository struct {
	store store.Store
	subs  *subcompany.Repository
}

// NewRepository creates division repository
func NewRepository(s store.Store, subs *subcompany.Repository) *Repository {
	return &Repository{store: s, subs: subs}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Division, error) {
	docs, err := r.store.List(ctx, store.Divisions)
	if err != nil {
		return nil, err
	}
	out := make([]*Division, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Division, error) {
	doc, err := r.store.Get(ctx, store.Divisions, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// GetBySubCompany returns the divisions owned by one sub-company.
func (r *Repository) GetBySubCompany(ctx context.Context, subCompanyID string) ([]*Division, error) {
	docs, err := r.store.List(ctx, store.Divisions, store.Eq("sub_company_id", subCompanyID))
	if err != nil {
		return nil, err
	}
	out := make([]*Division, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, d *Division) (*Division, error) {
	doc, err := r.store.Create(ctx, store.Divisions, map[string]any{
		"name":           d.Name,
		"description":    d.Description,
		"icon":           d.Icon,
		"sub_company_id": d.SubCompanyID,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.Divisions, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Divisions, id)
}

// ParentName resolves the owning sub-company's name. Orphans (parent deleted)
// get the fallback label; this must never error for rendering purposes.
func (r *Repository) ParentName(ctx context.Context, d *Division) string {
	if d.SubCompanyID == "" {
		return FallbackParentLabel
	}
	parent, err := r.subs.GetByID(ctx, d.SubCompanyID)
	if err != nil || parent == nil {
		return FallbackParentLabel
	}
	return parent.Name
}
