package subcompany

import (
	"context"
	"testing"

	"corpsite/internal/store"
)

func TestCreateRoundTrip(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	created, err := repo.Create(ctx, &SubCompany{Name: "Vistara", Email: "hello@vistara.example"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create returned empty id")
	}
	if created.Slug != "vistara" {
		t.Fatalf("slug = %q, want vistara", created.Slug)
	}
	if created.CreatedAt.IsZero() || created.CreatedAt.After(created.UpdatedAt) {
		t.Fatalf("timestamps wrong: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Vistara" || got.Email != "hello@vistara.example" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	got, err := repo.GetByID(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	created, err := repo.Create(ctx, &SubCompany{Name: "Vistara", Description: "original", Address: "HQ"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, created.ID, map[string]any{"description": "changed"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != "changed" {
		t.Fatalf("description = %q, want changed", got.Description)
	}
	if got.Address != "HQ" {
		t.Fatalf("unsupplied field overwritten: address = %q", got.Address)
	}
}

func TestUpdateMissingTargetFails(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	err := repo.Update(context.Background(), "does-not-exist", map[string]any{"description": "x"})
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveSlug(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	if _, err := repo.Create(ctx, &SubCompany{Name: "Vistara"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &SubCompany{Name: "Mandala Bumi Nusantara"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ResolveSlug(ctx, "vistara")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if got == nil || got.Name != "Vistara" {
		t.Fatalf("vistara resolved to %+v", got)
	}

	got, err = repo.ResolveSlug(ctx, "mandala-bumi-nusantara")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if got == nil || got.Name != "Mandala Bumi Nusantara" {
		t.Fatalf("mandala-bumi-nusantara resolved to %+v", got)
	}

	got, err = repo.ResolveSlug(ctx, "unknown-brand")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if got != nil {
		t.Fatalf("unknown slug resolved to %+v, want nil", got)
	}
}

func TestResolveSlugLegacyFallback(t *testing.T) {
	mem := store.NewMemory()
	repo := NewRepository(mem)
	ctx := context.Background()

	// A document written before slugs were persisted has no slug field.
	if _, err := mem.Create(ctx, store.SubCompanies, map[string]any{
		"name": "Legacy Brand",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ResolveSlug(ctx, "legacy-brand")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if got == nil || got.Name != "Legacy Brand" {
		t.Fatalf("legacy doc resolved to %+v", got)
	}
}

func TestSlugUniqueness(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	first, err := repo.Create(ctx, &SubCompany{Name: "Vistara"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Same normalized name collides.
	if _, err := repo.Create(ctx, &SubCompany{Name: "VISTARA"}); err != ErrSlugTaken {
		t.Fatalf("duplicate create: err = %v, want ErrSlugTaken", err)
	}

	second, err := repo.Create(ctx, &SubCompany{Name: "Other Brand"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Renaming onto a taken slug is rejected, renaming onto itself is fine.
	if err := repo.Update(ctx, second.ID, map[string]any{"name": "Vistara"}); err != ErrSlugTaken {
		t.Fatalf("rename onto taken slug: err = %v, want ErrSlugTaken", err)
	}
	if err := repo.Update(ctx, first.ID, map[string]any{"name": "Vistara"}); err != nil {
		t.Fatalf("rename onto own slug: %v", err)
	}
}
