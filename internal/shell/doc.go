// Package shell implements the interactive flashcard session: it reads
// commands from an input stream, applies them to a deck.Deck, prints the
// results and records everything said and typed in a transcript.
//
// Commands are dispatched through a table keyed by the exact command name.
// Unknown commands are reported and the menu is shown again. End of input
// behaves like the exit command.
package shell
