package deck

import "github.com/phrazzld/scry-flashcards/internal/domain"

// Hardest lists the cards sharing the highest non-zero error count.
type Hardest struct {
	Cards []domain.Card

	// TotalErrors is the shared error count multiplied by len(Cards).
	TotalErrors int
}

// HasErrors reports whether any card has been answered wrongly.
func (h Hardest) HasErrors() bool {
	return len(h.Cards) > 0
}

// Terms returns the terms of the hardest cards in deck order.
func (h Hardest) Terms() []string {
	terms := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		terms = append(terms, c.Term)
	}
	return terms
}

// Hardest returns every card with the maximum error count, in insertion
// order. An empty deck, or one where no card has errors, yields a zero
// Hardest.
func (d *Deck) Hardest() Hardest {
	maxErrors := 0
	for _, c := range d.cards {
		maxErrors = max(maxErrors, c.Errors)
	}
	if maxErrors == 0 {
		return Hardest{}
	}

	var h Hardest
	for _, c := range d.cards {
		if c.Errors == maxErrors {
			h.Cards = append(h.Cards, *c)
		}
	}
	h.TotalErrors = maxErrors * len(h.Cards)
	return h
}

// ResetErrors sets every card's error count to zero.
func (d *Deck) ResetErrors() {
	for _, c := range d.cards {
		c.Errors = 0
	}
	d.logger.Debug("error counts reset")
}
