package deck

import (
	"log/slog"

	"github.com/phrazzld/scry-flashcards/internal/domain"
)

// Outcome is the result of checking an answer.
type Outcome struct {
	Correct bool

	// CorrectDefinition is the asked card's definition; set when the answer
	// was wrong.
	CorrectDefinition string

	// AliasTerm names the card whose definition matches the submitted answer.
	// Only meaningful when HasAlias is true.
	AliasTerm string
	HasAlias  bool
}

// CheckAnswer compares submitted with the definition of the card for term.
// A wrong answer adds exactly one error to that card.
func (d *Deck) CheckAnswer(term, submitted string) (Outcome, error) {
	c, ok := d.byTerm[term]
	if !ok {
		return Outcome{}, domain.NewDeckError("check", "term", term, domain.ErrCardNotFound)
	}

	if submitted == c.Definition {
		return Outcome{Correct: true}, nil
	}

	c.Errors++
	out := Outcome{CorrectDefinition: c.Definition}
	if alias, ok := d.byDefinition[submitted]; ok {
		out.AliasTerm = alias.Term
		out.HasAlias = true
	}
	d.logger.Debug("wrong answer recorded",
		slog.String("term", term),
		slog.Int("errors", c.Errors),
		slog.Bool("alias", out.HasAlias))
	return out, nil
}

// Sample draws one card uniformly at random. Draws are independent, so the
// same card may come up repeatedly within a quiz.
func (d *Deck) Sample() (domain.Card, error) {
	if len(d.cards) == 0 {
		return domain.Card{}, domain.ErrEmptyDeck
	}
	return *d.cards[d.rng.IntN(len(d.cards))], nil
}
