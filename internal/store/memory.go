package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and credential-less local
// runs. It mirrors the Firestore contract: server-clock timestamps, merge
// updates, ErrNotFound on missing update targets, no-op deletes.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any

	// Now is swappable so tests can control timestamp ordering.
	Now func() time.Time
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]any),
		Now:         time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: clone(fields)}, nil
}

func (s *MemoryStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, fields := range s.collections[collection] {
		if matches(fields, filters) {
			docs = append(docs, Document{ID: id, Fields: clone(fields)})
		}
	}
	return docs, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, fields map[string]any) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	data := clone(fields)
	data["created_at"] = now
	data["updated_at"] = now

	id := uuid.New().String()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][id] = data

	return Document{ID: id, Fields: clone(data)}, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	existing["updated_at"] = s.Now()
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	existing, ok := s.collections[collection][id]
	if !ok {
		existing = map[string]any{"created_at": s.Now()}
		s.collections[collection][id] = existing
	}
	for k, v := range fields {
		existing[k] = v
	}
	existing["updated_at"] = s.Now()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matches(fields map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(fields[f.Field], f.Value) {
			return false
		}
	}
	return true
}
