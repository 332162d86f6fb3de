package main

import (
	"context"
	"fmt"

	"github.com/osse101/GrammoRPG_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply embedded migrations (up) or list their state (status)"
}

func (c *MigrateCommand) Run(args []string) error {
	subcmd := "up"
	if len(args) > 0 {
		subcmd = args[0]
	}
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown subcommand: %s (want up or status)", subcmd)
	}

	ctx := context.Background()

	// Initialize already applies pending migrations.
	_, db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Shutdown()

	if subcmd == "up" {
		PrintSuccess("Migrations are up to date")
		return nil
	}

	PrintHeader("Migration status")
	status, err := database.MigrationStatus(ctx, db.Pool())
	if err != nil {
		return err
	}
	for _, s := range status {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("  %05d  %-8s  %s\n", s.Source.Version, s.State, applied)
	}
	return nil
}
