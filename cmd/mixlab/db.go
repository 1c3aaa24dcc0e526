package main

import (
	"context"
	"fmt"

	"mixlab/internal/catalog"
	"mixlab/internal/config"
	"mixlab/internal/knowledge"
	"mixlab/internal/store"
	"mixlab/internal/store/postgres"
	"mixlab/internal/store/sqlite"
)

const configPath = "mixlab.yaml"

func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.Database.DSN)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func loadKnowledge(cfg *config.ProjectConfig) (*knowledge.Base, error) {
	if cfg.Knowledge == "" {
		return knowledge.Default(), nil
	}
	return knowledge.Load(cfg.Knowledge)
}

func loadCatalog(cfg *config.ProjectConfig) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Empty(), nil
	}
	return catalog.Load(cfg.Catalog)
}
