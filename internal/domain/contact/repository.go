package contact

import (
	"context"
	"sort"

	"corpsite/internal/store"
)

// Repository handles contact submission data access
type Repository struct {
	store store.Store
}

// NewRepository creates contact repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Create records a public form submission with status "new".
func (r *Repository) Create(ctx context.Context, sub *Submission) (*Submission, error) {
	doc, err := r.store.Create(ctx, store.ContactSubmissions, map[string]any{
		"name":    sub.Name,
		"email":   sub.Email,
		"message": sub.Message,
		"status":  StatusNew,
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// GetAll returns the inbox, newest first.
func (r *Repository) GetAll(ctx context.Context) ([]*Submission, error) {
	docs, err := r.store.List(ctx, store.ContactSubmissions)
	if err != nil {
		return nil, err
	}
	subs := make([]*Submission, 0, len(docs))
	for _, doc := range docs {
		subs = append(subs, decode(doc))
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Submission, error) {
	doc, err := r.store.Get(ctx, store.ContactSubmissions, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// Open returns a submission and transitions it new → read as a side effect
// of being viewed in the inbox.
func (r *Repository) Open(ctx context.Context, id string) (*Submission, error) {
	sub, err := r.GetByID(ctx, id)
	if err != nil || sub == nil {
		return sub, err
	}
	if sub.Status == StatusNew {
		if err := r.store.Update(ctx, store.ContactSubmissions, id, map[string]any{"status": StatusRead}); err != nil {
			return nil, err
		}
		sub.Status = StatusRead
	}
	return sub, nil
}

// MarkReplied transitions a submission to "replied".
func (r *Repository) MarkReplied(ctx context.Context, id string) error {
	err := r.store.Update(ctx, store.ContactSubmissions, id, map[string]any{"status": StatusReplied})
	if err == store.ErrNotFound {
		return ErrSubmissionNotFound
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.ContactSubmissions, id)
}
