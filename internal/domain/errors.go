package domain

import (
	"errors"
	"fmt"
)

// Deck errors. Every condition is recoverable: the shell reports it to the
// user and keeps the loop running. Use errors.Is to check for a condition and
// errors.As with *DeckError to recover the offending field and value.
var (
	// ErrDuplicateTerm is returned when a term is already present in the deck.
	ErrDuplicateTerm = errors.New("term already exists")

	// ErrDuplicateDefinition is returned when a definition is already used by
	// another card in the deck.
	ErrDuplicateDefinition = errors.New("definition already exists")

	// ErrCardNotFound is returned when no card has the requested term.
	ErrCardNotFound = errors.New("card not found")

	// ErrEmptyDeck is returned when an operation needs at least one card.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrMalformedRecord is returned when a persisted record is missing a
	// field or carries an unparsable error count.
	ErrMalformedRecord = errors.New("malformed record")
)

// IsDuplicateError reports whether err is a term or definition collision.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateTerm) ||
		errors.Is(err, ErrDuplicateDefinition)
}

// DeckError attaches the field and value that caused a deck operation to fail.
type DeckError struct {
	Operation string // The operation that failed (e.g., "add", "remove")
	Field     string // "term" or "definition"
	Value     string // The offending value
	Err       error  // Sentinel error
}

// Error implements the error interface for DeckError.
func (e *DeckError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", e.Operation, e.Field, e.Value, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DeckError) Unwrap() error {
	return e.Err
}

// NewDeckError creates a new DeckError.
func NewDeckError(operation, field, value string, err error) *DeckError {
	return &DeckError{
		Operation: operation,
		Field:     field,
		Value:     value,
		Err:       err,
	}
}
