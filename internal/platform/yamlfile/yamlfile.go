// Package yamlfile stores decks as YAML snapshots:
//
//	cards:
//	  - term: cat
//	    definition: animal
//	    errors: 2
//
// Unlike the line format, YAML quotes values as needed, so terms and
// definitions may contain the "|" separator.
package yamlfile

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/platform/textfile"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

const backendName = "yaml"

type document struct {
	Cards []deck.Record `yaml:"cards"`
}

// Store is a store.DeckStore backed by a YAML document.
type Store struct {
	path string
}

var _ store.DeckStore = (*Store)(nil)

// New returns a store for the YAML file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path implements store.DeckStore.
func (s *Store) Path() string {
	return s.path
}

// Load implements store.DeckStore.
func (s *Store) Load(ctx context.Context) ([]deck.Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path,
			fmt.Errorf("%w: %w", store.ErrFileNotFound, err))
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && len(bytes.TrimSpace(raw)) > 0 {
		return nil, store.NewStoreError(backendName, "load", s.path,
			fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err))
	}

	for i, r := range doc.Cards {
		if err := r.Card().Validate(); err != nil {
			return nil, store.NewStoreError(backendName, "load", s.path,
				fmt.Errorf("card %d: %w: %w", i+1, domain.ErrMalformedRecord, err))
		}
	}

	logger.FromContext(ctx).Debug("yaml deck loaded",
		slog.String("path", s.path),
		slog.Int("record_count", len(doc.Cards)))
	return doc.Cards, nil
}

// Save implements store.DeckStore.
func (s *Store) Save(ctx context.Context, records []deck.Record) error {
	doc := document{Cards: records}
	if doc.Cards == nil {
		doc.Cards = []deck.Record{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}
	if err := enc.Close(); err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}

	if err := textfile.WriteFileAtomic(s.path, buf.Bytes()); err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}

	logger.FromContext(ctx).Debug("yaml deck saved",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))
	return nil
}
