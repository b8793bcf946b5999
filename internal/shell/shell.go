package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/platform/backend"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/store"
	"github.com/phrazzld/scry-flashcards/internal/transcript"
)

// MenuPrompt is shown before every command.
const MenuPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"

// errExit stops the loop after the exit command.
var errExit = errors.New("exit requested")

// Opener resolves a deck location to a store.
type Opener func(path string) (store.DeckStore, error)

type handlerFunc func(ctx context.Context) error

// Shell runs one interactive session.
type Shell struct {
	deck     *deck.Deck
	in       *bufio.Scanner
	out      io.Writer
	log      *transcript.Transcript
	open     Opener
	exportTo string
	logger   *slog.Logger

	handlers map[string]handlerFunc
	writeErr error
}

// Option configures a Shell.
type Option func(*Shell)

// WithExportTo saves the deck to path when the session ends.
func WithExportTo(path string) Option {
	return func(s *Shell) { s.exportTo = path }
}

// WithOpener replaces the store resolution used by import and export.
func WithOpener(open Opener) Option {
	return func(s *Shell) {
		if open != nil {
			s.open = open
		}
	}
}

// WithTranscript records the session into t instead of a fresh transcript.
func WithTranscript(t *transcript.Transcript) Option {
	return func(s *Shell) {
		if t != nil {
			s.log = t
		}
	}
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a shell that reads commands from in and writes to out.
func New(d *deck.Deck, in io.Reader, out io.Writer, opts ...Option) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	s := &Shell{
		deck:   d,
		in:     scanner,
		out:    out,
		log:    transcript.New(),
		open:   func(path string) (store.DeckStore, error) { return backend.Open(path) },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "shell"))

	s.handlers = map[string]handlerFunc{
		"add":          s.handleAdd,
		"remove":       s.handleRemove,
		"import":       s.handleImport,
		"export":       s.handleExport,
		"ask":          s.handleAsk,
		"exit":         s.handleExit,
		"log":          s.handleLog,
		"hardest card": s.handleHardest,
		"reset stats":  s.handleReset,
	}
	return s
}

// Transcript returns the session transcript.
func (s *Shell) Transcript() *transcript.Transcript {
	return s.log
}

// Run shows the menu and executes commands until exit, end of input or
// cancellation of ctx. It returns nil after a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	ctx = logger.WithLogger(ctx, s.logger)
	s.logger.Debug("session started", slog.Int("deck_size", s.deck.Len()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.ask(MenuPrompt)
		if err != nil {
			return s.finish(ctx, err)
		}

		command := strings.TrimSpace(line)
		handler, ok := s.handlers[command]
		if !ok {
			s.logger.Debug("unknown command", slog.String("command", command))
			s.sayf("Unknown action \"%s\".", command)
			s.separate()
			continue
		}

		if err := handler(ctx); err != nil {
			return s.finish(ctx, err)
		}
		s.separate()

		if s.writeErr != nil {
			return fmt.Errorf("write output: %w", s.writeErr)
		}
	}
}

// finish turns the error that stopped the loop into Run's result.
func (s *Shell) finish(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, errExit):
		s.logger.Debug("session ended", slog.String("reason", "exit"))
	case errors.Is(err, io.EOF):
		s.logger.Debug("session ended", slog.String("reason", "end of input"))
		if err := s.handleExit(ctx); !errors.Is(err, errExit) {
			return err
		}
	default:
		return err
	}
	if s.writeErr != nil {
		return fmt.Errorf("write output: %w", s.writeErr)
	}
	return nil
}

// ImportFrom loads the deck at path, as the import command does, and reports
// the outcome. Only a malformed or conflicting deck is returned as an error;
// a missing file is reported and ignored.
func (s *Shell) ImportFrom(ctx context.Context, path string) error {
	return s.importDeck(logger.WithLogger(ctx, s.logger), path)
}

// say prints line and records it.
func (s *Shell) say(line string) {
	s.log.Append(line)
	if s.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.writeErr = err
	}
}

func (s *Shell) sayf(format string, args ...any) {
	s.say(fmt.Sprintf(format, args...))
}

// separate prints the blank line between commands. It is not recorded.
func (s *Shell) separate() {
	if s.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintln(s.out); err != nil {
		s.writeErr = err
	}
}

// ask prints prompt and returns the next input line. It returns io.EOF when
// the input is exhausted.
func (s *Shell) ask(prompt string) (string, error) {
	s.say(prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	line := strings.TrimRight(s.in.Text(), "\r")
	s.log.Append(line)
	return line, nil
}
