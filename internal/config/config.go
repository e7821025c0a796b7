// Package config resolves makhraj settings from defaults, an optional YAML
// file, a .env file and MAKHRAJ_* environment variables, in that order.
// Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/makhraj/internal/speech"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MAKHRAJ_"

// Log modes.
const (
	LogOff  = "off"
	LogDev  = "dev"
	LogProd = "prod"
	LogFile = "file"
)

// Config holds the resolved settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the default data directory.
	DBPath string `yaml:"db_path"`

	// UnlockAll makes every curriculum level available. Meant for testing
	// content, not for learners.
	UnlockAll bool `yaml:"unlock_all"`

	// Seed drives every random choice. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`

	LogMode  string `yaml:"log_mode"`
	LogLevel string `yaml:"log_level"`
	LogPath  string `yaml:"log_path"` // used when LogMode is "file"

	QuestionsPerExercise int    `yaml:"questions_per_exercise"`
	SpeechCommand        string `yaml:"speech_command"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogMode:              LogOff,
		LogLevel:             "info",
		QuestionsPerExercise: 5,
		SpeechCommand:        speech.DefaultCommand,
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch c.LogMode {
	case LogOff, LogDev, LogProd:
	case LogFile:
		if c.LogPath == "" {
			return errors.New("log_mode file needs log_path")
		}
	default:
		return fmt.Errorf("unknown log mode %q", c.LogMode)
	}
	if c.QuestionsPerExercise < 1 {
		return fmt.Errorf("questions_per_exercise must be positive, got %d", c.QuestionsPerExercise)
	}
	return nil
}

// LoadOptions says where Load looks. Empty paths are skipped.
type LoadOptions struct {
	File    string
	EnvFile string

	// Getenv reads the process environment; nil means os.Getenv.
	Getenv func(string) string
}

// DefaultFile returns $XDG_CONFIG_HOME/makhraj/config.yaml, falling back
// to ~/.config.
func DefaultFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "makhraj", "config.yaml")
}

// Load resolves the configuration. Missing files are not an error; a file
// that exists but cannot be parsed is.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", opts.File, err)
			}
		}
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	// Values from the real environment win over the .env file.
	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		m, err := godotenv.Read(opts.EnvFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read env file: %w", err)
		default:
			dotenv = m
		}
	}
	lookup := func(name string) string {
		if v := getenv(EnvPrefix + name); v != "" {
			return v
		}
		return dotenv[EnvPrefix+name]
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) string) error {
	if v := lookup("DB"); v != "" {
		cfg.DBPath = v
	}
	if v := lookup("UNLOCK_ALL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sUNLOCK_ALL: %w", EnvPrefix, err)
		}
		cfg.UnlockAll = b
	}
	if v := lookup("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = n
	}
	if v := lookup("LOG"); v != "" {
		cfg.LogMode = strings.ToLower(v)
	}
	if v := lookup("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := lookup("QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sQUESTIONS: %w", EnvPrefix, err)
		}
		cfg.QuestionsPerExercise = n
	}
	if v := lookup("SPEECH_COMMAND"); v != "" {
		cfg.SpeechCommand = v
	}
	return nil
}
