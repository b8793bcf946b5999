package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/phrazzld/scry-flashcards/internal/config"
	"github.com/phrazzld/scry-flashcards/internal/deck"
	"github.com/phrazzld/scry-flashcards/internal/platform/backend"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/shell"
	"github.com/phrazzld/scry-flashcards/internal/store"
)

type runOptions struct {
	configFile string
	envFile    string
	flags      *pflag.FlagSet
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
}

// run loads configuration, sets up logging and drives one session.
func run(ctx context.Context, opts runOptions) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		EnvFile:    opts.envFile,
		Flags:      opts.flags,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	baseLogger, err := logger.Setup(cfg.Log, opts.errOut)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	sessionID := uuid.New()
	log := baseLogger.With(slog.String("session_id", sessionID.String()))
	ctx = logger.WithLogger(ctx, log)

	log.Info("flashcards session starting",
		slog.String("import_from", cfg.Deck.ImportFrom),
		slog.String("export_to", cfg.Deck.ExportTo),
		slog.Bool("seeded", cfg.Quiz.Seed != 0))

	var d *deck.Deck
	if cfg.Quiz.Seed != 0 {
		d = deck.NewSeeded(cfg.Quiz.Seed, deck.WithLogger(log))
	} else {
		d = deck.New(deck.WithLogger(log))
	}

	opener := func(path string) (store.DeckStore, error) {
		return backend.Open(path, backend.WithSessionID(sessionID))
	}
	sh := shell.New(d, opts.in, opts.out,
		shell.WithExportTo(cfg.Deck.ExportTo),
		shell.WithOpener(opener),
		shell.WithLogger(log))

	if cfg.Deck.ImportFrom != "" {
		if err := sh.ImportFrom(ctx, cfg.Deck.ImportFrom); err != nil {
			return fmt.Errorf("failed to import %s: %w", cfg.Deck.ImportFrom, err)
		}
	}

	if err := sh.Run(ctx); err != nil {
		return err
	}
	log.Info("flashcards session finished", slog.Int("deck_size", d.Len()))
	return nil
}
