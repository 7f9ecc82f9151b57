package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrUserNotFound marks recommendation requests for unknown users. It is
	// distinct from store failures so the API can report 404 instead of 500.
	ErrUserNotFound = errors.New("user not found")
)
