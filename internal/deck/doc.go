// Package deck implements the in-memory flashcard deck: an insertion-ordered
// collection of cards indexed by term and by definition, the quiz scoring
// rules, the hardest-card report and the pipe-delimited line codec used to
// persist decks.
//
// A Deck is not safe for concurrent use; it is owned by the single shell loop
// that drives it.
package deck
