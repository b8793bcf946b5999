package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

const backendName = "text"

// Store is a store.DeckStore backed by a pipe-delimited text file.
type Store struct {
	path string
}

var _ store.DeckStore = (*Store)(nil)

// New returns a store for the file at path. Nothing is opened until Load or Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path implements store.DeckStore.
func (s *Store) Path() string {
	return s.path
}

// Load implements store.DeckStore. A file that cannot be opened or read for
// any reason is reported as store.ErrFileNotFound.
func (s *Store) Load(ctx context.Context) ([]deck.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path,
			fmt.Errorf("%w: %w", store.ErrFileNotFound, err))
	}
	defer func() { _ = f.Close() }()

	records, err := deck.ReadRecords(f)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedRecord) {
			err = fmt.Errorf("%w: %w", store.ErrFileNotFound, err)
		}
		return nil, store.NewStoreError(backendName, "load", s.path, err)
	}

	logger.FromContext(ctx).Debug("deck file loaded",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))
	return records, nil
}

// Save implements store.DeckStore. The file is replaced atomically.
func (s *Store) Save(ctx context.Context, records []deck.Record) error {
	var buf bytes.Buffer
	if err := deck.WriteRecords(&buf, records); err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}
	if err := WriteFileAtomic(s.path, buf.Bytes()); err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}

	logger.FromContext(ctx).Debug("deck file saved",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))
	return nil
}

// WriteLines writes each line, newline terminated, to path, replacing any
// existing file.
func WriteLines(path string, lines []string) error {
	var buf bytes.Buffer
	if err := deck.WriteLines(&buf, lines); err != nil {
		return err
	}
	return WriteFileAtomic(path, buf.Bytes())
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
