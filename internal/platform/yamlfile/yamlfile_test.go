package yamlfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	records := []deck.Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "a|b", Definition: "pipe: inside", Errors: 0},
	}
	s := New(path)

	require.NoError(t, s.Save(context.Background(), records))
	loaded, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "deck.yml")
	body := "cards:\n  - term: cat\n    definition: animal\n    errors: 3\n  - term: run\n    definition: move\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	records, err := New(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []deck.Record{
		{Term: "cat", Definition: "animal", Errors: 3},
		{Term: "run", Definition: "move"},
	}, records)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	records, err := New(path).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "none.yaml")).Load(context.Background())

	assert.True(t, errors.Is(err, store.ErrFileNotFound))
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not yaml":        "cards: [unclosed",
		"unknown field":   "cards:\n  - term: a\n    meaning: b\n",
		"negative errors": "cards:\n  - term: a\n    definition: b\n    errors: -4\n",
		"errors not int":  "cards:\n  - term: a\n    definition: b\n    errors: lots\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "deck.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := New(path).Load(context.Background())

			assert.True(t, errors.Is(err, domain.ErrMalformedRecord), "got %v", err)
		})
	}
}
