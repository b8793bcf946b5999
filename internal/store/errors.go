package store

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrFileNotFound indicates that the deck location is missing or unreadable.
	ErrFileNotFound = fmt.Errorf("%w: file", ErrNotFound)

	// ErrUnsupportedBackend is returned when no backend can handle a location.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including a raw fs.ErrNotExist from the os package.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Backend   string // The backend (e.g., "text", "sqlite")
	Operation string // The operation that failed (e.g., "load", "save")
	Path      string // The location involved
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Backend, e.Operation, e.Path, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(backend, operation, path string, err error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}
