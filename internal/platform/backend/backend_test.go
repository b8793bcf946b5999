package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/platform/sqlite"
	"github.com/phrazzld/scry-flashcards/internal/platform/textfile"
	"github.com/phrazzld/scry-flashcards/internal/platform/yamlfile"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path string
		want Kind
	}{
		{"deck.txt", KindText},
		{"deck", KindText},
		{"capitals.csv", KindText},
		{"deck.yaml", KindYAML},
		{"deck.YML", KindYAML},
		{"deck.db", KindSQLite},
		{"/tmp/x/deck.sqlite", KindSQLite},
		{"deck.SQLITE3", KindSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.path))
		})
	}
}

func TestOpenReturnsMatchingStore(t *testing.T) {
	t.Parallel()

	s, err := Open("deck.txt")
	require.NoError(t, err)
	assert.IsType(t, &textfile.Store{}, s)

	s, err = Open("deck.yml")
	require.NoError(t, err)
	assert.IsType(t, &yamlfile.Store{}, s)

	s, err = Open("deck.db", WithSessionID(uuid.New()))
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, s)
	assert.Equal(t, "deck.db", s.Path())
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	t.Parallel()
	_, err := Open("  ")
	assert.True(t, errors.Is(err, store.ErrUnsupportedBackend))
}

func TestEveryBackendRoundTrips(t *testing.T) {
	t.Parallel()
	records := []deck.Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "run", Definition: "move", Errors: 2},
		{Term: "red", Definition: "color", Errors: 0},
	}

	for _, name := range []string{"deck.txt", "deck.yaml", "deck.db"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := Open(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			require.NoError(t, s.Save(context.Background(), records))
			got, err := s.Load(context.Background())

			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestEveryBackendReportsMissingFile(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"missing.txt", "missing.yaml", "missing.db"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := Open(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			_, err = s.Load(context.Background())
			assert.True(t, errors.Is(err, store.ErrFileNotFound), "got %v", err)
			assert.True(t, store.IsNotFoundError(err))
		})
	}
}
