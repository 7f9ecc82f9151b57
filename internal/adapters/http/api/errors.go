package api

import (
	"errors"
	"fmt"

	service "github.com/placewise/placewise/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind produces an error of the given kind for op.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind annotates err with both an operation and a kind so callers can
// match on the kind while logs keep the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// isNotFound reports whether err should surface as HTTP 404.
func isNotFound(err error) bool {
	return errors.Is(err, service.ErrUserNotFound) || errors.Is(err, ErrNotFound)
}
