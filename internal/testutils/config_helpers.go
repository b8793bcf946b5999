package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempConfigFile writes a flashcards.yaml with the given content to a
// temporary directory and returns its path. The directory is removed when the
// test finishes.
func CreateTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flashcards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Failed to write config file")
	return path
}
