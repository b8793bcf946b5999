package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-flashcards/internal/domain"
)

func TestCheckAnswerCorrect(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal")

	out, err := d.CheckAnswer("cat", "animal")

	require.NoError(t, err)
	assert.True(t, out.Correct)
	card, _ := d.Get("cat")
	assert.Zero(t, card.Errors)
}

func TestCheckAnswerWrong(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal", "run", "move")

	out, err := d.CheckAnswer("cat", "something")

	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, "animal", out.CorrectDefinition)
	assert.False(t, out.HasAlias)
	assert.Empty(t, out.AliasTerm)
	card, _ := d.Get("cat")
	assert.Equal(t, 1, card.Errors)

	_, err = d.CheckAnswer("cat", "something else")
	require.NoError(t, err)
	card, _ = d.Get("cat")
	assert.Equal(t, 2, card.Errors, "each wrong answer adds exactly one error")
}

func TestCheckAnswerAlias(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal", "run", "move")

	out, err := d.CheckAnswer("cat", "move")

	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.True(t, out.HasAlias)
	assert.Equal(t, "run", out.AliasTerm)
	assert.Equal(t, "animal", out.CorrectDefinition)

	run, _ := d.Get("run")
	assert.Zero(t, run.Errors, "the alias card is not penalised")
}

func TestCheckAnswerUnknownTerm(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "cat", "animal")

	_, err := d.CheckAnswer("dog", "animal")

	assert.True(t, errors.Is(err, domain.ErrCardNotFound))
}

func TestSampleEmptyDeck(t *testing.T) {
	t.Parallel()
	d := NewSeeded(1)

	_, err := d.Sample()

	assert.True(t, errors.Is(err, domain.ErrEmptyDeck))
}

func TestSampleIsWithReplacement(t *testing.T) {
	t.Parallel()
	d := newTestDeck(t, "a", "1", "b", "2", "c", "3")

	seen := make(map[string]int)
	for range 300 {
		card, err := d.Sample()
		require.NoError(t, err)
		seen[card.Term]++
	}

	assert.Len(t, seen, 3, "every card should be drawn at least once in 300 draws")
	for term, n := range seen {
		assert.Greater(t, n, 50, "card %q drawn too rarely for a uniform sampler", term)
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	t.Parallel()
	draw := func() []string {
		d := NewSeeded(42)
		for _, p := range [][2]string{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}} {
			require.NoError(t, d.Add(p[0], p[1]))
		}
		var terms []string
		for range 20 {
			c, err := d.Sample()
			require.NoError(t, err)
			terms = append(terms, c.Term)
		}
		return terms
	}

	assert.Equal(t, draw(), draw())
}
