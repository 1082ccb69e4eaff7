package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/qiminglab/qiming/internal/config"
	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/core/engine"
	"github.com/qiminglab/qiming/internal/core/store"
	"github.com/qiminglab/qiming/internal/observability"
)

// buildEngine wires a scoring engine from the loaded configuration. The
// returned cleanup closes the backing store and is safe to call once.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, func(), error) {
	repo, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	caches := cache.NewRegistry(cfg.Cache)
	eng := engine.New(repo, bazi.NewConverter(), caches, cfg.Engine)
	return eng, cleanup, nil
}

// buildRepository selects the dictionary backend. The memory driver serves
// the embedded seed set; libsql opens (and seeds, when empty) the store.
func buildRepository(ctx context.Context, cfg *config.Config) (core.CharacterRepository, func(), error) {
	if cfg.Store.Driver == "memory" || cfg.Store.Driver == "" {
		if observability.CLILogger != nil {
			observability.CLILogger.Debug("Using embedded in-memory dictionary")
		}
		return store.NewMemoryRepository(store.Seed()), func() {}, nil
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	if err := st.Bootstrap(ctx); err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	if observability.CLILogger != nil {
		observability.CLILogger.Debug("Dictionary store ready",
			zap.String("driver", st.Driver()))
	}

	cleanup := func() {
		if err := st.Close(); err != nil && observability.CLILogger != nil {
			observability.CLILogger.Warn("Failed to close dictionary store", zap.Error(err))
		}
	}
	return st, cleanup, nil
}
