package store

import (
	"context"
	"time"
)

// Document is one schema-less record from a collection. Fields hold whatever
// the store returned; the typed accessors below are the decode boundary.
// Entities read through them so a malformed field degrades to a zero value
// instead of leaking an untyped value into a response.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the document-store contract every repository is built on. The
// Firestore implementation backs production; the memory implementation backs
// tests and credential-less local runs.
type Store interface {
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// List returns every document matching the filters, unordered.
	List(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	// Create writes a new document, stamping created_at and updated_at with
	// the server clock, and returns the stored document.
	Create(ctx context.Context, collection string, fields map[string]any) (Document, error)
	// Update merges only the supplied fields into an existing document and
	// refreshes updated_at. Fails with ErrNotFound if the id does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Set writes a document at a fixed id (merge), used for singletons. It
	// stamps created_at on first write and updated_at on every write.
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document unconditionally. Missing ids are not an error.
	Delete(ctx context.Context, collection, id string) error
}

func (d Document) String(key string) string {
	if v, ok := d.Fields[key].(string); ok {
		return v
	}
	return ""
}

func (d Document) Bool(key string) bool {
	if v, ok := d.Fields[key].(bool); ok {
		return v
	}
	return false
}

func (d Document) Int(key string) int {
	switch v := d.Fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (d Document) Time(key string) time.Time {
	if v, ok := d.Fields[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func (d Document) Strings(key string) []string {
	raw, ok := d.Fields[key].([]any)
	if !ok {
		if v, ok := d.Fields[key].([]string); ok {
			return v
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Maps decodes a sub-list of records, e.g. gallery media or project features.
func (d Document) Maps(key string) []map[string]any {
	raw, ok := d.Fields[key].([]any)
	if !ok {
		if v, ok := d.Fields[key].([]map[string]any); ok {
			return v
		}
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
