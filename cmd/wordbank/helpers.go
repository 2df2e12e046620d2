package main

import (
	"context"
	"fmt"

	"github.com/chiahsuan/wordbank/internal/bank"
	"github.com/chiahsuan/wordbank/internal/config"
	"github.com/chiahsuan/wordbank/internal/database"
	"github.com/chiahsuan/wordbank/internal/speech"
	"github.com/chiahsuan/wordbank/internal/word"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newBankStore builds the word bank store on the configured persistence
// backend. The returned cleanup releases backend resources.
func newBankStore(ctx context.Context, cfg *config.Config) (*bank.Store, func(), error) {
	switch cfg.Storage.Type {
	case "mysql":
		db, err := database.Open(cfg.Storage.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		cleanup := func() {
			_ = db.Close()
		}
		return bank.NewStore(ctx, bank.NewDBStore(db)), cleanup, nil
	default:
		store := bank.NewStore(ctx, bank.NewFileStore(cfg.Storage.File.Directory))
		return store, func() {}, nil
	}
}

// newWordSource builds the candidate word source: the remote pipeline when
// enabled, otherwise the static YAML pool.
func newWordSource(cfg *config.Config) (word.Source, func(), error) {
	if cfg.Remote.Enabled {
		source := word.NewRemoteSource(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.RetryAttempts)
		cleanup := func() {
			_ = source.Close()
		}
		return source, cleanup, nil
	}

	if cfg.Pool.File == "" {
		return nil, nil, fmt.Errorf("either remote.enabled or pool.file must be configured")
	}
	records, err := word.LoadPool(cfg.Pool.File)
	if err != nil {
		return nil, nil, fmt.Errorf("word.LoadPool(%s) > %w", cfg.Pool.File, err)
	}
	return word.NewStaticPool(records, nil), func() {}, nil
}

func newPlayer(cfg *config.Config) speech.Player {
	if cfg.Speech.Command == "" {
		return speech.NopPlayer{}
	}
	return speech.NewExecPlayer(cfg.Speech.Command, cfg.Speech.Args...)
}
