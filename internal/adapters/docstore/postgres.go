package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// documentRow is the single-table representation of all collections: one
// JSONB payload per document, with a serial sequence preserving insertion
// order.
type documentRow struct {
	Seq        int64  `gorm:"primaryKey;autoIncrement"`
	Collection string `gorm:"index;size:64;not null"`
	DocID      string `gorm:"uniqueIndex;size:36;not null"`
	Payload    []byte `gorm:"type:jsonb;not null"`
}

func (documentRow) TableName() string {
	return "documents"
}

// PostgresStore is a gorm-backed Store. Filters translate to JSONB
// containment so equality matching happens in the database.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects to postgres and migrates the documents table.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Insert appends a JSON-encoded document and assigns it a UUID id.
func (s *PostgresStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	start := time.Now()
	id := uuid.New().String()
	stored := copyDocument(doc)
	stored[IDField] = id

	payload, err := json.Marshal(stored)
	if err != nil {
		observe("insert", collection, start, err)
		return "", fmt.Errorf("marshal document: %w", err)
	}

	row := documentRow{Collection: collection, DocID: id, Payload: payload}
	err = s.db.WithContext(ctx).Create(&row).Error
	observe("insert", collection, start, err)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) query(ctx context.Context, collection string, filter Filter) (*gorm.DB, error) {
	q := s.db.WithContext(ctx).Model(&documentRow{}).
		Where("collection = ?", collection).
		Order("seq ASC")
	if len(filter) > 0 {
		filterJSON, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("marshal filter: %w", err)
		}
		q = q.Where("payload @> ?", string(filterJSON))
	}
	return q, nil
}

// FindOne returns the first matching document in insertion order.
func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	start := time.Now()
	q, err := s.query(ctx, collection, filter)
	if err != nil {
		observe("find_one", collection, start, err)
		return nil, err
	}

	var row documentRow
	err = q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observe("find_one", collection, start, ErrNoDocument)
		return nil, ErrNoDocument
	}
	if err != nil {
		observe("find_one", collection, start, err)
		return nil, fmt.Errorf("find document: %w", err)
	}

	doc, err := decodeRow(row)
	observe("find_one", collection, start, err)
	return doc, err
}

// Find returns up to limit matching documents in insertion order.
func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	start := time.Now()
	q, err := s.query(ctx, collection, filter)
	if err != nil {
		observe("find", collection, start, err)
		return nil, err
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []documentRow
	if err := q.Find(&rows).Error; err != nil {
		observe("find", collection, start, err)
		return nil, fmt.Errorf("find documents: %w", err)
	}

	out := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			observe("find", collection, start, err)
			return nil, err
		}
		out = append(out, doc)
	}
	observe("find", collection, start, nil)
	return out, nil
}

// UpdateOne merges fields into the first matching document.
func (s *PostgresStore) UpdateOne(ctx context.Context, collection string, filter Filter, fields Document) error {
	start := time.Now()
	q, err := s.query(ctx, collection, filter)
	if err != nil {
		observe("update_one", collection, start, err)
		return err
	}

	var row documentRow
	err = q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observe("update_one", collection, start, ErrNoDocument)
		return ErrNoDocument
	}
	if err != nil {
		observe("update_one", collection, start, err)
		return fmt.Errorf("find document: %w", err)
	}

	doc, err := decodeRow(row)
	if err != nil {
		observe("update_one", collection, start, err)
		return err
	}
	for k, v := range fields {
		if k == IDField {
			continue
		}
		doc[k] = v
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		observe("update_one", collection, start, err)
		return fmt.Errorf("marshal document: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&documentRow{}).
		Where("seq = ?", row.Seq).
		Update("payload", payload).Error
	observe("update_one", collection, start, err)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Count returns the number of documents in a collection.
func (s *PostgresStore) Count(ctx context.Context, collection string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&documentRow{}).
		Where("collection = ?", collection).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return int(n), nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}
	return sqlDB.Close()
}

func decodeRow(row documentRow) (Document, error) {
	var doc Document
	if err := json.Unmarshal(row.Payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
