package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardest(t *testing.T) {
	t.Parallel()
	d := NewSeeded(1)
	_, err := d.Import([]Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "run", Definition: "move", Errors: 2},
		{Term: "red", Definition: "color", Errors: 0},
	})
	require.NoError(t, err)

	h := d.Hardest()

	require.True(t, h.HasErrors())
	assert.Equal(t, []string{"cat", "run"}, h.Terms())
	assert.Equal(t, 4, h.TotalErrors)
}

func TestHardestSingleCard(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal", "run", "move")
	for range 3 {
		_, err := d.CheckAnswer("run", "nope")
		require.NoError(t, err)
	}
	_, err := d.CheckAnswer("cat", "nope")
	require.NoError(t, err)

	h := d.Hardest()

	assert.Equal(t, []string{"run"}, h.Terms())
	assert.Equal(t, 3, h.TotalErrors)
}

func TestHardestWithoutErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, NewSeeded(1).Hardest().HasErrors(), "empty deck")

	d := newTestDeck(t, "cat", "animal", "run", "move")
	h := d.Hardest()
	assert.False(t, h.HasErrors())
	assert.Zero(t, h.TotalErrors)
	assert.Empty(t, h.Terms())
}

func TestHardestDoesNotReorderDeck(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "a", "1", "b", "2", "c", "3")
	_, err := d.CheckAnswer("c", "x")
	require.NoError(t, err)

	_ = d.Hardest()

	assert.Equal(t, []string{"a|1|0", "b|2|0", "c|3|1"}, d.Export())
}

func TestResetErrors(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal", "run", "move")
	_, err := d.CheckAnswer("cat", "x")
	require.NoError(t, err)
	_, err = d.CheckAnswer("run", "x")
	require.NoError(t, err)

	d.ResetErrors()

	assert.False(t, d.Hardest().HasErrors())
	assert.Equal(t, []string{"cat|animal|0", "run|move|0"}, d.Export())
}
