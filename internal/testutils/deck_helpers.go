package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-flashcards/internal/deck"
)

// TestSeed is the sampler seed used by CreateTestDeck.
const TestSeed uint64 = 1

// SampleRecords returns a small deck: two cards sharing the highest error
// count and one card without errors.
func SampleRecords() []deck.Record {
	return []deck.Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "run", Definition: "move", Errors: 2},
		{Term: "red", Definition: "color", Errors: 0},
	}
}

// CreateTestDeck returns a deck seeded with TestSeed and loaded with records.
// Two decks created from the same records sample cards in the same order.
func CreateTestDeck(t *testing.T, records ...deck.Record) *deck.Deck {
	t.Helper()

	d := deck.NewSeeded(TestSeed)
	_, err := d.Import(records)
	require.NoError(t, err, "Failed to import test records")
	return d
}

// MustWriteDeckFile writes lines as a text deck file named name in a fresh
// temporary directory and returns its path.
func MustWriteDeckFile(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Failed to write deck file")
	return path
}

// AssertDeckLines checks the exported lines of d.
func AssertDeckLines(t *testing.T, d *deck.Deck, want ...string) {
	t.Helper()

	if want == nil {
		want = []string{}
	}
	require.Equal(t, want, d.Export(), "Deck content mismatch")
}
