// Package main implements the flashcards command, an interactive trainer
// that quizzes the user on term/definition cards and keeps per-card error
// counts between sessions.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
