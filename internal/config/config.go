package config

// Config holds all application configuration.
type Config struct {
	Deck DeckConfig `mapstructure:"deck"`
	Log  LogConfig  `mapstructure:"log" validate:"required"`
	Quiz QuizConfig `mapstructure:"quiz"`
}

// DeckConfig controls where the deck is loaded from at startup and saved to
// on exit. Empty paths disable the step. The storage backend is chosen from
// the path's extension.
type DeckConfig struct {
	ImportFrom string `mapstructure:"import_from"`
	ExportTo   string `mapstructure:"export_to"`
}

// LogConfig contains the structured logging settings. Logs go to stderr so
// they never mix with the interactive session on stdout.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// QuizConfig contains quiz settings.
type QuizConfig struct {
	// Seed makes question order reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}
