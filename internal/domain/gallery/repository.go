package gallery

import (
	"context"

	"corpsite/internal/store"
)

// Repository handles gallery data access
type Repository struct {
	store store.Store
}

// NewRepository creates gallery repository
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Item, error) {
	docs, err := r.store.List(ctx, store.Gallery)
	if err != nil {
		return nil, err
	}
	out := make([]*Item, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Item, error) {
	doc, err := r.store.Get(ctx, store.Gallery, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// GetByType returns items of one type via a server-side predicate.
func (r *Repository) GetByType(ctx context.Context, itemType string) ([]*Item, error) {
	docs, err := r.store.List(ctx, store.Gallery, store.Eq("type", itemType))
	if err != nil {
		return nil, err
	}
	out := make([]*Item, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decode(doc))
	}
	return out, nil
}

// Create validates the type/media pairing before writing.
func (r *Repository) Create(ctx context.Context, item *Item) (*Item, error) {
	if err := validateMedia(item.Type, item.Images); err != nil {
		return nil, err
	}
	doc, err := r.store.Create(ctx, store.Gallery, map[string]any{
		"name":   item.Name,
		"type":   item.Type,
		"images": encodeMedia(item.Images),
	})
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.Gallery, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.Gallery, id)
}

// validateMedia enforces the type constraint on the media sub-list:
// "Home" items carry hero video variants, "gallery" items carry photo/video.
func validateMedia(itemType string, images []Media) error {
	var allowed map[string]bool
	switch itemType {
	case TypeHome:
		allowed = map[string]bool{MediaVideoDesktop: true, MediaVideoMobile: true}
	case TypeGallery:
		allowed = map[string]bool{MediaPhoto: true, MediaVideo: true}
	default:
		return ErrInvalidType
	}

	for _, m := range images {
		if !allowed[m.Type] {
			return ErrInvalidMedia
		}
	}
	return nil
}
