package company

import (
	"context"
	"testing"

	"corpsite/internal/store"
)

func TestProfileSingleton(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	// Unwritten singleton reads as nil, not an error.
	profile, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile != nil {
		t.Fatalf("unwritten profile = %+v, want nil", profile)
	}

	if err := repo.SaveProfile(ctx, map[string]any{"name": "Holding Co", "email": "info@example.com"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	// A later partial save merges instead of replacing.
	if err := repo.SaveProfile(ctx, map[string]any{"email": "contact@example.com"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	profile, err = repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Name != "Holding Co" {
		t.Fatalf("name = %q, want Holding Co", profile.Name)
	}
	if profile.Email != "contact@example.com" {
		t.Fatalf("email = %q, want contact@example.com", profile.Email)
	}
}

func TestPageDocuments(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	page, err := repo.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	if page != nil {
		t.Fatalf("unwritten page = %v, want nil", page)
	}

	if err := repo.SavePage(ctx, "home", map[string]any{"hero_title": "Welcome"}); err != nil {
		t.Fatalf("SavePage: %v", err)
	}

	page, err = repo.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	if page["hero_title"] != "Welcome" {
		t.Fatalf("page = %v", page)
	}
}
