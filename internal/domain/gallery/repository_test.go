package gallery

import (
	"context"
	"testing"

	"corpsite/internal/store"
)

func TestEmptyMediaListTolerated(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	created, err := repo.Create(ctx, &Item{Name: "Empty Set", Type: TypeGallery})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PhotoCount() != 0 || got.VideoCount() != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", got.PhotoCount(), got.VideoCount())
	}
	if url := got.FirstURL(MediaPhoto); url != "" {
		t.Fatalf("FirstURL on empty item = %q, want empty", url)
	}
}

func TestMediaCounts(t *testing.T) {
	item := &Item{
		Type: TypeGallery,
		Images: []Media{
			{Type: MediaPhoto, URL: "p1"},
			{Type: MediaPhoto, URL: "p2"},
			{Type: MediaVideo, URL: "v1"},
		},
	}
	if item.PhotoCount() != 2 {
		t.Fatalf("PhotoCount = %d, want 2", item.PhotoCount())
	}
	if item.VideoCount() != 1 {
		t.Fatalf("VideoCount = %d, want 1", item.VideoCount())
	}
	if item.FirstURL(MediaPhoto) != "p1" {
		t.Fatalf("FirstURL = %q, want p1", item.FirstURL(MediaPhoto))
	}
}

func TestMediaTypeConstraint(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	// Home items carry hero video variants only.
	_, err := repo.Create(ctx, &Item{
		Name:   "Hero",
		Type:   TypeHome,
		Images: []Media{{Type: MediaPhoto, URL: "x"}},
	})
	if err != ErrInvalidMedia {
		t.Fatalf("photo on Home item: err = %v, want ErrInvalidMedia", err)
	}

	if _, err := repo.Create(ctx, &Item{
		Name: "Hero",
		Type: TypeHome,
		Images: []Media{
			{Type: MediaVideoDesktop, URL: "d"},
			{Type: MediaVideoMobile, URL: "m"},
		},
	}); err != nil {
		t.Fatalf("valid Home item rejected: %v", err)
	}

	// Gallery items carry photo/video only.
	_, err = repo.Create(ctx, &Item{
		Name:   "Showcase",
		Type:   TypeGallery,
		Images: []Media{{Type: MediaVideoDesktop, URL: "d"}},
	})
	if err != ErrInvalidMedia {
		t.Fatalf("hero variant on gallery item: err = %v, want ErrInvalidMedia", err)
	}

	// Unknown parent type is rejected outright.
	if _, err := repo.Create(ctx, &Item{Name: "X", Type: "banner"}); err != ErrInvalidType {
		t.Fatalf("unknown type: err = %v, want ErrInvalidType", err)
	}
}

func TestGetByType(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Item{Name: "Hero", Type: TypeHome}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &Item{Name: "Showcase", Type: TypeGallery}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := repo.GetByType(ctx, TypeGallery)
	if err != nil {
		t.Fatalf("GetByType: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Showcase" {
		t.Fatalf("GetByType = %+v, want only Showcase", items)
	}
}
