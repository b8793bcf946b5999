package main

import (
	"io"

	"github.com/spf13/cobra"
)

// newRootCommand builds the flashcards command reading the session from in.
// The session is written to out and logs to errOut.
func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var configFile, envFile string

	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Interactive flashcard trainer",
		Long: `flashcards keeps a deck of term/definition cards, quizzes you on them
and remembers how often each card was answered wrongly.

The deck can be loaded at startup with --import_from and saved on exit with
--export_to. The storage format follows the file extension: .db, .sqlite and
.sqlite3 use SQLite, .yaml and .yml use YAML, anything else uses the
"term|definition|errors" text format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), runOptions{
				configFile: configFile,
				envFile:    envFile,
				flags:      cmd.Flags(),
				in:         in,
				out:        out,
				errOut:     errOut,
			})
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default ./flashcards.yaml or $HOME/.config/flashcards/flashcards.yaml)")
	flags.StringVar(&envFile, "env-file", "", "dotenv file with FLASHCARDS_* variables (default ./.env if present)")
	flags.String("import_from", "", "load the deck from this file before the session starts")
	flags.String("export_to", "", "save the deck to this file when the session ends")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: json or text")
	flags.Uint64("seed", 0, "seed for question order; 0 picks a random seed")

	return cmd
}
