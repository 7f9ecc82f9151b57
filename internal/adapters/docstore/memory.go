package docstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory Store. It is the default backend
// and the one exercised by tests; insertion order per collection is the scan
// order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
	closed      bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// Insert appends a copy of doc and assigns it a UUID id.
func (s *MemoryStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		observe("insert", collection, start, ErrStoreClosed)
		return "", ErrStoreClosed
	}

	stored := make(Document, len(doc)+1)
	maps.Copy(stored, doc)
	id := uuid.New().String()
	stored[IDField] = id
	s.collections[collection] = append(s.collections[collection], stored)
	observe("insert", collection, start, nil)
	return id, nil
}

// FindOne returns the first matching document in insertion order.
func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		observe("find_one", collection, start, ErrStoreClosed)
		return nil, ErrStoreClosed
	}

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			observe("find_one", collection, start, nil)
			return copyDocument(doc), nil
		}
	}
	observe("find_one", collection, start, ErrNoDocument)
	return nil, ErrNoDocument
}

// Find returns up to limit matching documents in insertion order.
func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		observe("find", collection, start, ErrStoreClosed)
		return nil, ErrStoreClosed
	}

	var out []Document
	for _, doc := range s.collections[collection] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if matches(doc, filter) {
			out = append(out, copyDocument(doc))
		}
	}
	observe("find", collection, start, nil)
	return out, nil
}

// UpdateOne merges fields into the first matching document.
func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter Filter, fields Document) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		observe("update_one", collection, start, ErrStoreClosed)
		return ErrStoreClosed
	}

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range fields {
				if k == IDField {
					continue
				}
				doc[k] = v
			}
			observe("update_one", collection, start, nil)
			return nil
		}
	}
	observe("update_one", collection, start, ErrNoDocument)
	return ErrNoDocument
}

// Count returns the number of documents in a collection.
func (s *MemoryStore) Count(ctx context.Context, collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return len(s.collections[collection]), nil
}

// Close marks the store closed; subsequent operations fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	maps.Copy(out, doc)
	return out
}
