package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

func (s *Shell) handleAdd(_ context.Context) error {
	term, err := s.ask("The card:")
	if err != nil {
		return err
	}
	for s.deck.HasTerm(term) {
		if term, err = s.ask(fmt.Sprintf("The term \"%s\" already exists. Try again:", term)); err != nil {
			return err
		}
	}

	definition, err := s.ask("The definition of the card:")
	if err != nil {
		return err
	}
	for s.deck.HasDefinition(definition) {
		if definition, err = s.ask(fmt.Sprintf("The definition \"%s\" already exists. Try again:", definition)); err != nil {
			return err
		}
	}

	if err := s.deck.Add(term, definition); err != nil {
		s.logger.Warn("card rejected", slog.String("error", err.Error()))
		s.sayf("Can't add \"%s\": %v.", term, err)
		return nil
	}
	s.sayf("The pair (\"%s\":\"%s\") has been added.", term, definition)
	return nil
}

func (s *Shell) handleRemove(_ context.Context) error {
	term, err := s.ask("Which card?")
	if err != nil {
		return err
	}

	if _, err := s.deck.Remove(term); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			s.sayf("Can't remove \"%s\": there is no such card.", term)
			return nil
		}
		return err
	}
	s.say("The card has been removed.")
	return nil
}

func (s *Shell) handleImport(ctx context.Context) error {
	path, err := s.ask("File name:")
	if err != nil {
		return err
	}
	if err := s.importDeck(ctx, path); err != nil {
		s.sayf("Can't import \"%s\": %v.", path, err)
	}
	return nil
}

// importDeck loads path into the deck and reports the count. A missing file
// is reported here; any other failure is returned for the caller to report.
func (s *Shell) importDeck(ctx context.Context, path string) error {
	ds, err := s.open(path)
	if err != nil {
		return err
	}

	records, err := ds.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			s.logger.Debug("deck file not found", slog.String("path", path))
			s.say("File not found.")
			return nil
		}
		s.logger.Warn("deck import failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return err
	}

	n, err := s.deck.Import(records)
	if err != nil {
		s.logger.Warn("deck import rejected",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return err
	}
	s.sayf("%d cards have been loaded.", n)
	return nil
}

func (s *Shell) handleExport(ctx context.Context) error {
	path, err := s.ask("File name:")
	if err != nil {
		return err
	}
	if err := s.exportDeck(ctx, path); err != nil {
		s.sayf("Can't save \"%s\": %v.", path, err)
	}
	return nil
}

func (s *Shell) exportDeck(ctx context.Context, path string) error {
	ds, err := s.open(path)
	if err != nil {
		return err
	}

	records := s.deck.Records()
	if err := ds.Save(ctx, records); err != nil {
		s.logger.Warn("deck export failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return err
	}
	s.sayf("%d cards have been saved.", len(records))
	return nil
}

func (s *Shell) handleAsk(_ context.Context) error {
	if s.deck.Len() == 0 {
		s.say("There are no cards to ask about.")
		return nil
	}

	answer, err := s.ask("How many times to ask?")
	if err != nil {
		return err
	}
	times, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || times <= 0 {
		s.sayf("\"%s\" is not a valid number of questions.", answer)
		return nil
	}

	for range times {
		card, err := s.deck.Sample()
		if err != nil {
			return err
		}

		submitted, err := s.ask(fmt.Sprintf("Print the definition of \"%s\":", card.Term))
		if err != nil {
			return err
		}

		outcome, err := s.deck.CheckAnswer(card.Term, submitted)
		if err != nil {
			return err
		}
		switch {
		case outcome.Correct:
			s.say("Correct!")
		case outcome.HasAlias:
			s.sayf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".",
				outcome.CorrectDefinition, outcome.AliasTerm)
		default:
			s.sayf("Wrong. The right answer is \"%s\".", outcome.CorrectDefinition)
		}
	}
	return nil
}

func (s *Shell) handleExit(ctx context.Context) error {
	if s.exportTo != "" {
		if err := s.exportDeck(ctx, s.exportTo); err != nil {
			s.sayf("Can't save \"%s\": %v.", s.exportTo, err)
		}
	}
	s.say("Bye bye!")
	return errExit
}

func (s *Shell) handleLog(_ context.Context) error {
	path, err := s.ask("File name:")
	if err != nil {
		return err
	}

	if err := s.log.Save(path); err != nil {
		s.logger.Warn("transcript save failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		s.sayf("Can't save the log to \"%s\": %v.", path, err)
		return nil
	}
	s.say("The log has been saved.")
	return nil
}

func (s *Shell) handleHardest(_ context.Context) error {
	hardest := s.deck.Hardest()
	if !hardest.HasErrors() {
		s.say("There are no cards with errors.")
		return nil
	}

	terms := hardest.Terms()
	if len(terms) == 1 {
		s.sayf("The hardest card is \"%s\". You have %d errors answering it.", terms[0], hardest.TotalErrors)
		return nil
	}

	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + t + `"`
	}
	s.sayf("The hardest cards are %s. You have %d errors answering them.",
		strings.Join(quoted, ", "), hardest.TotalErrors)
	return nil
}

func (s *Shell) handleReset(_ context.Context) error {
	s.deck.ResetErrors()
	s.say("Card statistics have been reset.")
	return nil
}
