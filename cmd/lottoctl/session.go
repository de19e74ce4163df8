package main

import (
	"context"
	"fmt"

	"lottogen/internal/config"
	"lottogen/internal/logging"
	"lottogen/internal/lotto"
	"lottogen/internal/storage"
)

// session is one opened generator with the resources behind it.
type session struct {
	cfg       config.Config
	generator *lotto.Generator
	store     storage.Store
	logger    *logging.Logger
}

func (a *app) loadConfig() (config.Config, error) {
	return config.Load(a.viper, a.configFile)
}

func (a *app) open(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	loc, err := cfg.Display.Location()
	if err != nil {
		return nil, err
	}
	formatter, err := lotto.NewFormatter(cfg.Display.Locale, loc)
	if err != nil {
		return nil, err
	}

	store, err := a.openStore(cfg.StoreOptions())
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, fmt.Errorf("init %s store: %w", cfg.Store.Kind, err)
	}

	generator, err := lotto.NewGenerator(ctx, store,
		lotto.WithConfig(cfg.LottoConfig()),
		lotto.WithLogger(logger),
		lotto.WithFormatter(formatter),
	)
	if err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}

	return &session{cfg: cfg, generator: generator, store: store, logger: logger}, nil
}

func (s *session) Close() error {
	_ = s.logger.Sync()
	return storage.CloseIfSupported(s.store)
}
