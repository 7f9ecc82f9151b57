package docstore

import "errors"

// Sentinel kinds for document store errors.
var (
	ErrNoDocument     = errors.New("no matching document")
	ErrStoreClosed    = errors.New("store closed")
	ErrUnknownBackend = errors.New("unknown store backend")
)
