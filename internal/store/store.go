package store

import (
	"context"

	"github.com/phrazzld/scry-flashcards/internal/deck"
)

// DeckStore loads and saves a whole deck snapshot at a single location.
type DeckStore interface {
	// Load returns every record in stored order.
	// Returns ErrFileNotFound if nothing exists at the location.
	// Returns an error wrapping domain.ErrMalformedRecord for unparsable data.
	Load(ctx context.Context) ([]deck.Record, error)

	// Save replaces whatever is stored at the location with records.
	// A failed Save must not leave a partially written snapshot behind where
	// the backend can avoid it.
	Save(ctx context.Context, records []deck.Record) error

	// Path returns the location this store reads and writes.
	Path() string
}
