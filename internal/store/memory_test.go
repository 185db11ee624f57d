package store

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCreateRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	doc, err := s.Create(ctx, "things", map[string]any{"name": "first"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("Create returned empty id")
	}
	if doc.String("name") != "first" {
		t.Fatalf("name = %q, want first", doc.String("name"))
	}

	created := doc.Time("created_at")
	updated := doc.Time("updated_at")
	if created.IsZero() || updated.IsZero() {
		t.Fatal("timestamps not stamped on create")
	}
	if created.After(updated) {
		t.Fatalf("created_at %v after updated_at %v", created, updated)
	}

	got, err := s.Get(ctx, "things", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.String("name") != "first" {
		t.Fatalf("round trip name = %q", got.String("name"))
	}
}

func TestMemoryUpdateMergesOnlySuppliedFields(t *testing.T) {
	s := NewMemory()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return base }
	ctx := context.Background()

	doc, err := s.Create(ctx, "things", map[string]any{"name": "first", "color": "red"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s.Now = func() time.Time { return base.Add(time.Hour) }
	if err := s.Update(ctx, "things", doc.ID, map[string]any{"color": "blue"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Get(ctx, "things", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.String("name") != "first" {
		t.Fatalf("unsupplied field overwritten: name = %q", got.String("name"))
	}
	if got.String("color") != "blue" {
		t.Fatalf("color = %q, want blue", got.String("color"))
	}
	if !got.Time("updated_at").After(got.Time("created_at")) {
		t.Fatal("updated_at not refreshed by update")
	}
}

func TestMemoryMissingTargets(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, err := s.Get(ctx, "things", "nope"); err != ErrNotFound {
		t.Fatalf("Get missing: err = %v, want ErrNotFound", err)
	}
	if err := s.Update(ctx, "things", "nope", map[string]any{"x": 1}); err != ErrNotFound {
		t.Fatalf("Update missing: err = %v, want ErrNotFound", err)
	}
	// Delete is unconditional; a missing target is not an error.
	if err := s.Delete(ctx, "things", "nope"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestMemoryListFilters(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, status := range []string{"new", "new", "read"} {
		if _, err := s.Create(ctx, "subs", map[string]any{"status": status}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	docs, err := s.List(ctx, "subs", Eq("status", "new"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("filtered list = %d docs, want 2", len(docs))
	}

	all, err := s.List(ctx, "subs")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered list = %d docs, want 3", len(all))
	}
}

func TestMemorySetCreatesAndMerges(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if err := s.Set(ctx, "pages", "home", map[string]any{"title": "Home"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "pages", "home", map[string]any{"hero": "x"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "pages", "home")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.String("title") != "Home" || got.String("hero") != "x" {
		t.Fatalf("Set did not merge: %v", got.Fields)
	}
	if got.Time("created_at").IsZero() {
		t.Fatal("Set did not stamp created_at on first write")
	}
}
