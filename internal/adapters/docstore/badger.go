package docstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Key layout inside badger.
const (
	docKeyPrefix = "doc/"
	seqKeyPrefix = "seq/"

	seqBandwidth = 128
)

// BadgerStore is a BadgerDB-backed Store. Documents are JSON-encoded under
// collection-prefixed keys whose monotonic sequence suffix preserves
// insertion order during prefix scans.
type BadgerStore struct {
	db *badger.DB

	mu        sync.Mutex
	sequences map[string]*badger.Sequence
}

// OpenBadger opens (or creates) a badger-backed store at dir. An empty dir
// opens an in-memory database, which tests rely on.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{
		db:        db,
		sequences: make(map[string]*badger.Sequence),
	}, nil
}

func (s *BadgerStore) nextSeq(collection string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.sequences[collection]
	if !ok {
		var err error
		seq, err = s.db.GetSequence([]byte(seqKeyPrefix+collection), seqBandwidth)
		if err != nil {
			return 0, fmt.Errorf("get sequence: %w", err)
		}
		s.sequences[collection] = seq
	}
	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

func docKey(collection string, seq uint64) []byte {
	// Zero-padded so lexical key order equals insertion order.
	return []byte(fmt.Sprintf("%s%s/%020d", docKeyPrefix, collection, seq))
}

// Insert appends a JSON-encoded document and assigns it a UUID id.
func (s *BadgerStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	start := time.Now()
	id := uuid.New().String()
	stored := copyDocument(doc)
	stored[IDField] = id

	data, err := json.Marshal(stored)
	if err != nil {
		observe("insert", collection, start, err)
		return "", fmt.Errorf("marshal document: %w", err)
	}

	seq, err := s.nextSeq(collection)
	if err != nil {
		observe("insert", collection, start, err)
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(docKey(collection, seq), data)
	})
	observe("insert", collection, start, err)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

// FindOne returns the first matching document in insertion order.
func (s *BadgerStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	start := time.Now()
	docs, err := s.scan(collection, filter, 1)
	if err != nil {
		observe("find_one", collection, start, err)
		return nil, err
	}
	if len(docs) == 0 {
		observe("find_one", collection, start, ErrNoDocument)
		return nil, ErrNoDocument
	}
	observe("find_one", collection, start, nil)
	return docs[0], nil
}

// Find returns up to limit matching documents in insertion order.
func (s *BadgerStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	start := time.Now()
	docs, err := s.scan(collection, filter, limit)
	observe("find", collection, start, err)
	return docs, err
}

func (s *BadgerStore) scan(collection string, filter Filter, limit int) ([]Document, error) {
	var out []Document
	prefix := []byte(docKeyPrefix + collection + "/")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var doc Document
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return fmt.Errorf("decode document: %w", err)
			}
			if matches(doc, filter) {
				out = append(out, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOne merges fields into the first matching document within a single
// transaction.
func (s *BadgerStore) UpdateOne(ctx context.Context, collection string, filter Filter, fields Document) error {
	start := time.Now()
	prefix := []byte(docKeyPrefix + collection + "/")
	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var doc Document
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return fmt.Errorf("decode document: %w", err)
			}
			if !matches(doc, filter) {
				continue
			}
			for k, v := range fields {
				if k == IDField {
					continue
				}
				doc[k] = v
			}
			data, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("marshal document: %w", err)
			}
			return txn.Set(it.Item().KeyCopy(nil), data)
		}
		return ErrNoDocument
	})
	observe("update_one", collection, start, err)
	return err
}

// Count returns the number of documents in a collection.
func (s *BadgerStore) Count(ctx context.Context, collection string) (int, error) {
	count := 0
	prefix := []byte(docKeyPrefix + collection + "/")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: false})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close releases sequences and the underlying database.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	for _, seq := range s.sequences {
		_ = seq.Release()
	}
	s.sequences = make(map[string]*badger.Sequence)
	s.mu.Unlock()
	return s.db.Close()
}
