package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store over a Firestore project. Timestamps are
// written with the ServerTimestamp sentinel so created_at/updated_at come from
// the store's clock, never the process clock.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreClient creates the process-wide Firestore client.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

func NewFirestore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, f.Op, f.Value)
	}

	var docs []Document
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, fields map[string]any) (Document, error) {
	data := clone(fields)
	data["created_at"] = firestore.ServerTimestamp
	data["updated_at"] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return Document{}, &WriteError{Op: "create", Collection: collection, Err: err}
	}

	// Read back so callers see the resolved server timestamps.
	snap, err := ref.Get(ctx)
	if err != nil {
		return Document{ID: ref.ID, Fields: fields}, nil
	}
	return Document{ID: ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: firestore.ServerTimestamp})

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return &WriteError{Op: "update", Collection: collection, Err: err}
	}
	return nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	data := clone(fields)
	data["updated_at"] = firestore.ServerTimestamp

	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		data["created_at"] = firestore.ServerTimestamp
	}

	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return &WriteError{Op: "set", Collection: collection, Err: err}
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return &WriteError{Op: "delete", Collection: collection, Err: err}
	}
	return nil
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+2)
	for k, v := range m {
		out[k] = v
	}
	return out
}
