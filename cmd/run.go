package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/app"
	"github.com/abhisek/makhraj/internal/config"
	"github.com/abhisek/makhraj/internal/logger"
	"github.com/abhisek/makhraj/internal/speech"
	"github.com/abhisek/makhraj/internal/store"
	"github.com/abhisek/makhraj/internal/trainer"
)

// loadConfig resolves settings and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	if file == "" {
		file = config.DefaultFile()
	}
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.LoadOptions{File: file, EnvFile: envFile})
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("unlock-all") {
		cfg.UnlockAll, _ = flags.GetBool("unlock-all")
	}
	if flags.Changed("log") {
		cfg.LogMode, _ = flags.GetString("log")
	}
	if flags.Changed("log-path") {
		cfg.LogPath, _ = flags.GetString("log-path")
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*logger.Logger, error) {
	switch cfg.LogMode {
	case config.LogOff:
		return logger.Nop(), nil
	case config.LogFile:
		return logger.ToFile(cfg.LogPath, cfg.LogLevel)
	default:
		return logger.New(cfg.LogMode, cfg.LogLevel)
	}
}

// resolveDBPath returns the configured database path, or the default XDG
// path when none is set.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func newSpeaker(cfg config.Config, log *logger.Logger) speech.Speaker {
	s, err := speech.NewCommandSpeaker(cfg.SpeechCommand)
	if err != nil || !s.Available() {
		log.Warn("speech disabled", "command", cfg.SpeechCommand, "error", err)
		return speech.NopSpeaker{}
	}
	return s
}

// env is everything a command needs to work with stored progress.
type env struct {
	cfg   config.Config
	log   *logger.Logger
	store *store.Store
	tr    *trainer.Trainer
}

// openEnv loads config, opens the store and restores the trainer.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	tr := trainer.New(cmd.Context(), trainer.Options{
		Blobs:                st.BlobRepo(),
		Events:               st.EventRepo(),
		Speaker:              newSpeaker(cfg, log),
		Logger:               log,
		Seed:                 cfg.Seed,
		UnlockAll:            cfg.UnlockAll,
		QuestionsPerExercise: cfg.QuestionsPerExercise,
	})
	return &env{cfg: cfg, log: log, store: st, tr: tr}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store failed", "error", err)
	}
	e.log.Sync()
}

// runApp opens the store, builds the trainer, and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(cmd.Context(), app.Options{
		Trainer:    e.tr,
		SkipSplash: skipSplash,
	})
}
