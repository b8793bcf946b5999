package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/phrazzld/scry-flashcards/internal/domain"
)

// Deck holds the cards of a training session. The term and definition
// indexes always describe exactly the cards in the collection.
type Deck struct {
	cards        []*domain.Card
	byTerm       map[string]*domain.Card
	byDefinition map[string]*domain.Card

	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand sets the random source used by Sample.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an empty deck.
func New(opts ...Option) *Deck {
	d := &Deck{
		byTerm:       make(map[string]*domain.Card),
		byDefinition: make(map[string]*domain.Card),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With(slog.String("component", "deck"))
	return d
}

// NewSeeded creates an empty deck whose sampler is deterministic for a given seed.
func NewSeeded(seed uint64, opts ...Option) *Deck {
	return New(append([]Option{WithRand(rand.New(rand.NewPCG(seed, seed)))}, opts...)...)
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns copies of all cards in insertion order.
func (d *Deck) Cards() []domain.Card {
	out := make([]domain.Card, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, *c)
	}
	return out
}

// Get looks a card up by term.
func (d *Deck) Get(term string) (domain.Card, bool) {
	c, ok := d.byTerm[term]
	if !ok {
		return domain.Card{}, false
	}
	return *c, true
}

// FindByDefinition looks a card up by definition.
func (d *Deck) FindByDefinition(definition string) (domain.Card, bool) {
	c, ok := d.byDefinition[definition]
	if !ok {
		return domain.Card{}, false
	}
	return *c, true
}

// HasTerm reports whether a card with the given term exists.
func (d *Deck) HasTerm(term string) bool {
	_, ok := d.byTerm[term]
	return ok
}

// HasDefinition reports whether a card with the given definition exists.
func (d *Deck) HasDefinition(definition string) bool {
	_, ok := d.byDefinition[definition]
	return ok
}

// Add appends a new card with a zero error count. A term or definition that
// is already in use is reported as a *domain.DeckError wrapping
// domain.ErrDuplicateTerm or domain.ErrDuplicateDefinition and the deck is
// left unchanged.
func (d *Deck) Add(term, definition string) error {
	if d.HasTerm(term) {
		return domain.NewDeckError("add", "term", term, domain.ErrDuplicateTerm)
	}
	if d.HasDefinition(definition) {
		return domain.NewDeckError("add", "definition", definition, domain.ErrDuplicateDefinition)
	}

	card := domain.NewCard(term, definition)
	d.insert(&card)
	d.logger.Debug("card added", slog.String("term", term), slog.Int("deck_size", len(d.cards)))
	return nil
}

// Remove deletes the card with the given term and returns it.
func (d *Deck) Remove(term string) (domain.Card, error) {
	c, ok := d.byTerm[term]
	if !ok {
		return domain.Card{}, domain.NewDeckError("remove", "term", term, domain.ErrCardNotFound)
	}
	d.delete(c)
	d.logger.Debug("card removed", slog.String("term", term), slog.Int("deck_size", len(d.cards)))
	return *c, nil
}

// ImportLine inserts a card loaded from persisted state, keeping its error
// count. A card that already has the term is replaced: it is removed first
// and the new card is appended at the end. The definition must not belong to
// any other card remaining in the deck.
func (d *Deck) ImportLine(term, definition string, errorCount int) error {
	card := domain.Card{Term: term, Definition: definition, Errors: errorCount}
	if err := card.Validate(); err != nil {
		return domain.NewDeckError("import", "errors", strconv.Itoa(errorCount), errors.Join(domain.ErrMalformedRecord, err))
	}

	if owner, ok := d.byDefinition[definition]; ok && owner.Term != term {
		return domain.NewDeckError("import", "definition", definition, domain.ErrDuplicateDefinition)
	}

	if existing, ok := d.byTerm[term]; ok {
		d.delete(existing)
	}
	d.insert(&card)
	return nil
}

// Import loads records in order with ImportLine semantics. Either every
// record is applied or, on the first failure, the deck is left exactly as it
// was. It returns the number of records applied.
func (d *Deck) Import(records []Record) (int, error) {
	staged := d.clone()
	for i, r := range records {
		if err := staged.ImportLine(r.Term, r.Definition, r.Errors); err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	d.cards = staged.cards
	d.byTerm = staged.byTerm
	d.byDefinition = staged.byDefinition
	d.logger.Debug("records imported",
		slog.Int("record_count", len(records)),
		slog.Int("deck_size", len(d.cards)))
	return len(records), nil
}

// Records returns the persisted form of every card in insertion order.
func (d *Deck) Records() []Record {
	out := make([]Record, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, RecordFromCard(*c))
	}
	return out
}

// Export serialises every card as a "term|definition|errors" line in
// insertion order.
func (d *Deck) Export() []string {
	lines := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		lines = append(lines, FormatLine(RecordFromCard(*c)))
	}
	return lines
}

func (d *Deck) insert(c *domain.Card) {
	d.cards = append(d.cards, c)
	d.byTerm[c.Term] = c
	d.byDefinition[c.Definition] = c
}

func (d *Deck) delete(c *domain.Card) {
	if i := slices.Index(d.cards, c); i >= 0 {
		d.cards = slices.Delete(d.cards, i, i+1)
	}
	delete(d.byTerm, c.Term)
	delete(d.byDefinition, c.Definition)
}

// clone copies the collection and indexes; the random source and logger are shared.
func (d *Deck) clone() *Deck {
	cp := &Deck{
		cards:        make([]*domain.Card, 0, len(d.cards)),
		byTerm:       make(map[string]*domain.Card, len(d.byTerm)),
		byDefinition: make(map[string]*domain.Card, len(d.byDefinition)),
		rng:          d.rng,
		logger:       d.logger,
	}
	for _, c := range d.cards {
		card := *c
		cp.insert(&card)
	}
	return cp
}
