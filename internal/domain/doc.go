// Package domain contains the core flashcard entities and the errors shared by
// the deck model, the storage backends and the interactive shell. It has no
// dependencies on storage or console I/O.
package domain
