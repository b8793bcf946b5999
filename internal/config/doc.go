// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, FLASHCARDS_ environment variables and
// command-line flags. It provides type-safe access to the settings needed by
// the trainer while keeping configuration details out of the deck and shell.
package config
