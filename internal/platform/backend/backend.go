// Package backend picks the store.DeckStore implementation for a deck
// location based on its file extension.
package backend

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/scry-flashcards/internal/platform/sqlite"
	"github.com/phrazzld/scry-flashcards/internal/platform/textfile"
	"github.com/phrazzld/scry-flashcards/internal/platform/yamlfile"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

// Kind names a storage backend.
type Kind string

const (
	KindText   Kind = "text"
	KindYAML   Kind = "yaml"
	KindSQLite Kind = "sqlite"
)

type options struct {
	sessionID uuid.UUID
}

// Option configures Open.
type Option func(*options)

// WithSessionID tags stores that record sessions (SQLite) with id.
func WithSessionID(id uuid.UUID) Option {
	return func(o *options) { o.sessionID = id }
}

// Detect returns the backend kind for path. Unknown extensions fall back to
// the text format.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindText
	}
}

// Open returns the store for path. An empty or whitespace-only path is
// rejected with store.ErrUnsupportedBackend.
func Open(path string, opts ...Option) (store.DeckStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", store.ErrUnsupportedBackend)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch Detect(path) {
	case KindSQLite:
		var sqliteOpts []sqlite.Option
		if o.sessionID != uuid.Nil {
			sqliteOpts = append(sqliteOpts, sqlite.WithSessionID(o.sessionID))
		}
		return sqlite.New(path, sqliteOpts...), nil
	case KindYAML:
		return yamlfile.New(path), nil
	default:
		return textfile.New(path), nil
	}
}
