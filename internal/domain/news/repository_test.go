package news

import (
	"context"
	"testing"
	"time"

	"corpsite/internal/store"
)

func TestGetPublishedBySlug(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	published, err := repo.Create(ctx, &Article{Title: "Launch Day", Status: StatusPublished})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if published.Slug != "launch-day" {
		t.Fatalf("slug = %q, want launch-day", published.Slug)
	}
	if published.PublishedAt.IsZero() {
		t.Fatal("published_at not stamped on publish-at-create")
	}

	if _, err := repo.Create(ctx, &Article{Title: "Secret Draft"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetPublishedBySlug(ctx, "launch-day")
	if err != nil {
		t.Fatalf("GetPublishedBySlug: %v", err)
	}
	if got == nil || got.ID != published.ID {
		t.Fatalf("resolved %+v, want article %s", got, published.ID)
	}

	// Drafts are invisible on the public route.
	got, err = repo.GetPublishedBySlug(ctx, "secret-draft")
	if err != nil {
		t.Fatalf("GetPublishedBySlug: %v", err)
	}
	if got != nil {
		t.Fatalf("draft resolved publicly: %+v", got)
	}
}

func TestDraftsListedForAdminOnly(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Article{Title: "Public", Status: StatusPublished}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &Article{Title: "Draft"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list = %d articles, want 2", len(all))
	}

	public, err := repo.GetPublished(ctx)
	if err != nil {
		t.Fatalf("GetPublished: %v", err)
	}
	if len(public) != 1 || public[0].Title != "Public" {
		t.Fatalf("public list = %+v, want only the published article", public)
	}
}

func TestDuplicateSlugMostRecentWins(t *testing.T) {
	mem := store.NewMemory()
	repo := NewRepository(mem)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Two published articles sharing a slug; write timestamps directly so the
	// publication order is deterministic.
	if _, err := mem.Create(ctx, store.News, map[string]any{
		"title": "Old Post", "slug": "the-post", "status": StatusPublished,
		"published_at": base,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := mem.Create(ctx, store.News, map[string]any{
		"title": "New Post", "slug": "the-post", "status": StatusPublished,
		"published_at": base.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetPublishedBySlug(ctx, "the-post")
	if err != nil {
		t.Fatalf("GetPublishedBySlug: %v", err)
	}
	if got == nil || got.Title != "New Post" {
		t.Fatalf("resolved %+v, want the most recently published article", got)
	}
}

func TestPublishTransitionStampsOnce(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	draft, err := repo.Create(ctx, &Article{Title: "Later"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !draft.PublishedAt.IsZero() {
		t.Fatal("draft has published_at")
	}

	if err := repo.Update(ctx, draft.ID, map[string]any{"status": StatusPublished}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	published, err := repo.GetByID(ctx, draft.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if published.PublishedAt.IsZero() {
		t.Fatal("published_at not stamped on transition")
	}

	// Unpublish and republish keeps the original timestamp.
	firstPublished := published.PublishedAt
	if err := repo.Update(ctx, draft.ID, map[string]any{"status": StatusDraft}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := repo.Update(ctx, draft.ID, map[string]any{"status": StatusPublished}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := repo.GetByID(ctx, draft.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !again.PublishedAt.Equal(firstPublished) {
		t.Fatalf("published_at restamped: %v != %v", again.PublishedAt, firstPublished)
	}
}
