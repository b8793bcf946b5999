package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FLASHCARDS_LOG_LEVEL.
const EnvPrefix = "FLASHCARDS"

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"import_from": "deck.import_from",
	"export_to":   "deck.export_to",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"seed":        "quiz.seed",
}

// LoadOptions tells Load where to look beyond defaults and the environment.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. When empty, flashcards.yaml
	// is looked up in the working directory and $HOME/.config/flashcards and
	// silently skipped if absent.
	ConfigFile string

	// EnvFile is a dotenv file whose variables are exported before the
	// environment is read. When empty, .env in the working directory is used
	// if it exists. Variables already set in the environment win.
	EnvFile string

	// Flags, when set, are bound on top of every other source. Only flags the
	// user actually changed override lower-precedence values.
	Flags *pflag.FlagSet
}

// Load builds the configuration. Precedence from highest to lowest: changed
// flags, environment variables, config file, defaults.
// Returns a populated Config or an error if loading or validation fails.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("deck.import_from", "")
	v.SetDefault("deck.export_to", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")
	v.SetDefault("quiz.seed", 0)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("flashcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashcards")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
