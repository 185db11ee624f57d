package user

import (
	"context"

	"corpsite/internal/store"
)

// Repository handles CMS user data access
type Repository struct {
	store store.Store
}

// NewRepository creates user repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetAll(ctx context.Context) ([]*User, error) {
	docs, err := r.store.List(ctx, store.Users)
	if err != nil {
		return nil, err
	}
	out := make([]*User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	doc, err := r.store.Get(ctx, store.Users, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	docs, err := r.store.List(ctx, store.Users, store.Eq("email", email))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decode(docs[0]), nil
}

func (r *Repository) Create(ctx context.Context, u *User) (*User, error) {
	doc, err := r.store.Create(ctx, store.Users, map[string]any{
		"name":          u.Name,
		"email":         u.Email,
		"role":          u.Role,
		"password_hash": u.PasswordHash,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	err := r.store.Update(ctx, store.Users, id, fields)
	if err == store.ErrNotFound {
		return ErrUserNotFound
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Users, id)
}
