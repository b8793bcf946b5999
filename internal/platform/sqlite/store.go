package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

const (
	backendName = "sqlite"
	driverName  = "sqlite"
)

// Store is a store.DeckStore backed by a SQLite database file.
type Store struct {
	path      string
	sessionID uuid.UUID
	now       func() time.Time
}

var _ store.DeckStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithSessionID tags saved snapshots with the given session.
func WithSessionID(id uuid.UUID) Option {
	return func(s *Store) { s.sessionID = id }
}

// New returns a store for the database file at path. Nothing is opened until
// Load or Save.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		sessionID: uuid.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path implements store.DeckStore.
func (s *Store) Path() string {
	return s.path
}

// Load implements store.DeckStore. A database file that does not exist is
// reported as store.ErrFileNotFound and is not created.
func (s *Store) Load(ctx context.Context) ([]deck.Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path,
			fmt.Errorf("%w: %w", store.ErrFileNotFound, err))
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path, err)
	}
	defer s.close(ctx, db)

	rows, err := db.QueryContext(ctx,
		`SELECT term, definition, errors FROM cards ORDER BY position`)
	if err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path, err)
	}
	defer func() { _ = rows.Close() }()

	var records []deck.Record
	for rows.Next() {
		var r deck.Record
		if err := rows.Scan(&r.Term, &r.Definition, &r.Errors); err != nil {
			return nil, store.NewStoreError(backendName, "load", s.path,
				fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(backendName, "load", s.path, err)
	}

	logger.FromContext(ctx).Debug("sqlite deck loaded",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))
	return records, nil
}

// Save implements store.DeckStore. The database file is created if needed.
// The previous snapshot is kept if any insert fails.
func (s *Store) Save(ctx context.Context, records []deck.Record) error {
	db, err := s.open(ctx)
	if err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}
	defer s.close(ctx, db)

	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards`); err != nil {
			return fmt.Errorf("clear cards: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO cards (position, term, definition, errors) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, r := range records {
			if _, err := stmt.ExecContext(ctx, i+1, r.Term, r.Definition, r.Errors); err != nil {
				return fmt.Errorf("insert card %q: %w", r.Term, err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO snapshots (session_id, saved_at, card_count) VALUES (?, ?, ?)`,
			s.sessionID.String(), s.now().UTC().Format(time.RFC3339Nano), len(records))
		if err != nil {
			return fmt.Errorf("record snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return store.NewStoreError(backendName, "save", s.path, err)
	}

	logger.FromContext(ctx).Debug("sqlite deck saved",
		slog.String("path", s.path),
		slog.String("session_id", s.sessionID.String()),
		slog.Int("record_count", len(records)))
	return nil
}

// Snapshot describes one completed Save.
type Snapshot struct {
	SessionID uuid.UUID
	SavedAt   time.Time
	CardCount int
}

// Snapshots lists completed saves, oldest first.
func (s *Store) Snapshots(ctx context.Context) ([]Snapshot, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, store.NewStoreError(backendName, "snapshots", s.path,
			fmt.Errorf("%w: %w", store.ErrFileNotFound, err))
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, store.NewStoreError(backendName, "snapshots", s.path, err)
	}
	defer s.close(ctx, db)

	rows, err := db.QueryContext(ctx,
		`SELECT session_id, saved_at, card_count FROM snapshots ORDER BY id`)
	if err != nil {
		return nil, store.NewStoreError(backendName, "snapshots", s.path, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			id      string
			savedAt string
		)
		if err := rows.Scan(&id, &savedAt, &snap.CardCount); err != nil {
			return nil, store.NewStoreError(backendName, "snapshots", s.path, err)
		}
		if snap.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
			return nil, store.NewStoreError(backendName, "snapshots", s.path, err)
		}
		if snap.SessionID, err = uuid.Parse(id); err != nil {
			return nil, store.NewStoreError(backendName, "snapshots", s.path, err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(driverName, s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := Migrate(ctx, db, logger.FromContext(ctx).With(slog.String("component", "migrations"))); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s *Store) close(ctx context.Context, db *sql.DB) {
	if err := db.Close(); err != nil {
		logger.FromContext(ctx).Error("error closing database connection",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
	}
}
