// Package store defines the persistence contract for decks. The interface
// abstracts the on-disk format (pipe-delimited text, YAML or SQLite) from the
// shell, which only ever deals in deck records.
package store
