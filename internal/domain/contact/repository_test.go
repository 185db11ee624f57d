package contact

import (
	"context"
	"testing"

	"corpsite/internal/store"
)

func TestSubmissionLifecycle(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	sub, err := repo.Create(ctx, &Submission{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sub.Status != StatusNew {
		t.Fatalf("status = %q, want new", sub.Status)
	}

	// Viewing the submission in the inbox marks it read.
	opened, err := repo.Open(ctx, sub.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened.Status != StatusRead {
		t.Fatalf("status after open = %q, want read", opened.Status)
	}

	// A second open is a no-op transition.
	opened, err = repo.Open(ctx, sub.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened.Status != StatusRead {
		t.Fatalf("status after re-open = %q, want read", opened.Status)
	}

	if err := repo.MarkReplied(ctx, sub.ID); err != nil {
		t.Fatalf("MarkReplied: %v", err)
	}
	got, err := repo.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusReplied {
		t.Fatalf("status = %q, want replied", got.Status)
	}

	if err := repo.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted submission still readable: %+v", got)
	}
}

func TestMarkRepliedMissing(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	if err := repo.MarkReplied(context.Background(), "does-not-exist"); err != ErrSubmissionNotFound {
		t.Fatalf("err = %v, want ErrSubmissionNotFound", err)
	}
}

func TestOpenMissingReturnsNil(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	sub, err := repo.Open(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sub != nil {
		t.Fatalf("got %+v, want nil", sub)
	}
}
