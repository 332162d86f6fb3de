package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GrammoRPG_Go/internal/config"
	"github.com/osse101/GrammoRPG_Go/internal/database"
)

const checkDBTimeout = 5 * time.Second

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Ping the configured database once without migrating"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkDBTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1, time.Minute, time.Minute)
	if err != nil {
		if database.IsConnectionError(err) {
			return fmt.Errorf("database at %s:%s is not reachable: %w", cfg.DBHost, cfg.DBPort, err)
		}
		return err
	}
	defer pool.Close()

	PrintSuccess("Database is ready")
	return nil
}
