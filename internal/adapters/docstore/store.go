// Package docstore defines the document store contract and its backends.
//
// Collections are append-ordered sequences of schemaless documents. The
// service relies on nothing beyond flat field-equality filters, bounded
// reads, and merge-style partial updates.
package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/placewise/placewise/pkg/metrics"
)

// Collection names used by the service.
const (
	CollectionEvent   = "event"
	CollectionProfile = "userprofile"
	CollectionJob     = "job"
	CollectionOutcome = "applicationoutcome"
)

// IDField is the store-assigned document identifier key.
const IDField = "_id"

// Document is a schemaless record. Required vs optional keys are documented
// on the model types in internal/domain/model.
type Document = map[string]any

// Filter selects documents by flat field equality. All pairs must match.
type Filter = map[string]any

// Store provides read/write access to named document collections.
type Store interface {
	// Insert appends a new document and returns its assigned id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// FindOne returns the first document matching filter in insertion order.
	// Returns ErrNoDocument when nothing matches.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)

	// Find returns up to limit matching documents in insertion order.
	// A limit <= 0 means unbounded.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// UpdateOne merges fields into the first document matching filter.
	// Returns ErrNoDocument when nothing matches.
	UpdateOne(ctx context.Context, collection string, filter Filter, fields Document) error

	// Count returns the number of documents in a collection.
	Count(ctx context.Context, collection string) (int, error)

	// Close releases backend resources.
	Close() error
}

// matches reports whether doc satisfies every equality pair in filter.
// Values are compared as flat comparables; nested matching is not supported.
func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// observe records operation metrics for a backend call.
func observe(op, collection string, start time.Time, err error) {
	metrics.RecordStoreOperation(op, collection)
	metrics.RecordStoreOperationLatency(op, collection, float64(time.Since(start).Milliseconds()))
	if err != nil && !errors.Is(err, ErrNoDocument) {
		metrics.RecordStoreError(op)
	}
}
