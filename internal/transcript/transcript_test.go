package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsOrder(t *testing.T) {
	t.Parallel()
	var tr Transcript
	tr.Append("Input the action (add, remove):")
	tr.Append("add")
	tr.Appendf("The pair (%q:%q) has been added.", "cat", "animal")

	assert.Equal(t, []string{
		"Input the action (add, remove):",
		"add",
		`The pair ("cat":"animal") has been added.`,
	}, tr.Lines())
	assert.Equal(t, 3, tr.Len())
}

func TestAppendSplitsMultilineText(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Append("first\nsecond\n")

	assert.Equal(t, []string{"first", "second"}, tr.Lines())
}

func TestAppendKeepsEmptyLine(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Append("")

	assert.Equal(t, []string{""}, tr.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Append("a")

	lines := tr.Lines()
	lines[0] = "changed"

	assert.Equal(t, []string{"a"}, tr.Lines())
}

func TestSave(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.log")
	tr := New()
	tr.Append("How many times to ask?")
	tr.Append("2")

	require.NoError(t, tr.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "How many times to ask?\n2\n", string(data))
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nope", "session.log")

	err := New().Save(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save transcript")
}
