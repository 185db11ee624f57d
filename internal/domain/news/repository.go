package news

import (
	"context"
	"sort"
	"time"

	"corpsite/internal/pkg/slug"
	"corpsite/internal/store"
)

// Repository handles news data access
type Repository struct {
	store store.Store
}

// NewRepository creates news repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// GetAll returns every article, drafts included, most recently edited first.
// The sort happens client-side after the fetch.
func (r *Repository) GetAll(ctx context.Context) ([]*Article, error) {
	docs, err := r.store.List(ctx, store.News)
	if err != nil {
		return nil, err
	}
	articles := make([]*Article, 0, len(docs))
	for _, doc := range docs {
		articles = append(articles, decode(doc))
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].UpdatedAt.After(articles[j].UpdatedAt)
	})
	return articles, nil
}

// GetPublished returns published articles, newest first.
func (r *Repository) GetPublished(ctx context.Context) ([]*Article, error) {
	docs, err := r.store.List(ctx, store.News, store.Eq("status", StatusPublished))
	if err != nil {
		return nil, err
	}
	articles := make([]*Article, 0, len(docs))
	for _, doc := range docs {
		articles = append(articles, decode(doc))
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Article, error) {
	doc, err := r.store.Get(ctx, store.News, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// GetPublishedBySlug resolves the public /news/{slug} route. Drafts are
// excluded; when several published articles share a slug, the most recently
// published one wins.
func (r *Repository) GetPublishedBySlug(ctx context.Context, s string) (*Article, error) {
	docs, err := r.store.List(ctx, store.News,
		store.Eq("slug", s),
		store.Eq("status", StatusPublished),
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var latest *Article
	for _, doc := range docs {
		a := decode(doc)
		if latest == nil || a.PublishedAt.After(latest.PublishedAt) {
			latest = a
		}
	}
	return latest, nil
}

// Create persists an article, defaulting the slug from the title and stamping
// published_at when it is created already published.
func (r *Repository) Create(ctx context.Context, a *Article) (*Article, error) {
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}

	fields := map[string]any{
		"title":     a.Title,
		"slug":      a.Slug,
		"content":   a.Content,
		"excerpt":   a.Excerpt,
		"thumbnail": a.Thumbnail,
		"author":    a.Author,
		"status":    a.Status,
		"keywords":  a.Keywords,
	}
	if a.Status == StatusPublished {
		fields["published_at"] = time.Now()
	}

	doc, err := r.store.Create(ctx, store.News, fields)
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// Update merges the supplied fields. A transition to published stamps
// published_at unless the article was already published once.
func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	if status, ok := fields["status"].(string); ok && status == StatusPublished {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return store.ErrNotFound
		}
		if existing.PublishedAt.IsZero() {
			fields["published_at"] = time.Now()
		}
	}
	return r.store.Update(ctx, store.News, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.News, id)
}
