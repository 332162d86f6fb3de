package main

import (
	"context"
	"fmt"

	"github.com/osse101/GrammoRPG_Go/internal/config"
	"github.com/osse101/GrammoRPG_Go/internal/database"
)

// connect loads the application config and runs the same retrying bootstrap
// the API uses, so a successful return means the schema is current.
func connect(ctx context.Context) (*config.Config, *database.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db := database.NewManager(database.Config{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})

	PrintInfo("Connecting to %s:%s/%s (up to %d attempts)", cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBConnectRetries)
	if _, err := db.Initialize(ctx, cfg.DBConnectRetries, cfg.DBConnectDelay); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
