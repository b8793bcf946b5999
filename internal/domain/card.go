package domain

import "errors"

// ErrNegativeErrors is returned when a card carries a negative error count.
var ErrNegativeErrors = errors.New("card error count cannot be negative")

// Card is a single flashcard: a term (the question side), its definition (the
// answer side) and the number of wrong answers recorded for it.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Errors     int    `json:"errors"`
}

// NewCard creates a card with a zero error count.
func NewCard(term, definition string) Card {
	return Card{Term: term, Definition: definition}
}

// Validate checks if the Card has valid data.
func (c Card) Validate() error {
	if c.Errors < 0 {
		return ErrNegativeErrors
	}
	return nil
}
