package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GrammoRPG_Go/internal/bootstrap"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/server"
)

const seedPlayerName = "Aria"

// errNotReadBack is returned when a created row is gone before it could be read
var errNotReadBack = errors.New("created row was not found on read-back")

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Insert a small sample world (inventory, player, items, character, listing)"
}

func (c *SeedCommand) Run(args []string) error {
	ctx := context.Background()

	cfg, db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Shutdown()

	repos := bootstrap.InitializeRepositories(db.Pool())
	svcs := bootstrap.InitializeServices(repos, cfg.BcryptCost)

	PrintHeader("Seeding sample data...")
	created, err := seed(ctx, svcs)
	if err != nil {
		return err
	}
	if !created {
		PrintWarning("Player %q already exists, nothing to do", seedPlayerName)
		return nil
	}
	PrintSuccess("Sample data created")
	return nil
}

// seed goes through the services so the same rules as the API apply. It
// returns false when the sample player is already present.
func seed(ctx context.Context, svcs server.Services) (bool, error) {
	existing, err := svcs.Players.GetByName(ctx, seedPlayerName)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	inv, err := svcs.Inventories.Add(ctx, domain.InventoryInput{Money: 250, ItemList: "[]"})
	if err != nil {
		return false, fmt.Errorf("seed inventory: %w", err)
	}
	if inv == nil {
		return false, fmt.Errorf("seed inventory: %w", errNotReadBack)
	}

	p, err := svcs.Players.Add(ctx, domain.PlayerInput{
		Name:        seedPlayerName,
		Strength:    12,
		HP:          40,
		MaxHP:       40,
		InventoryID: inv.ID,
	})
	if err != nil {
		return false, fmt.Errorf("seed player: %w", err)
	}
	if p == nil {
		return false, fmt.Errorf("seed player: %w", errNotReadBack)
	}
	PrintInfo("player %s (%s)", p.Name, p.ID)

	sword := "A plain iron blade"
	items := []domain.ItemInput{
		{Name: "Iron Sword", Description: &sword, Rarity: domain.RarityCommon},
		{Name: "Healing Draught", Rarity: domain.RarityUncommon},
		{Name: "Moonstone", Rarity: domain.RarityRare},
	}
	var firstItem int
	for i, in := range items {
		it, err := svcs.Items.Add(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed item %q: %w", in.Name, err)
		}
		if it == nil {
			return false, fmt.Errorf("seed item %q: %w", in.Name, errNotReadBack)
		}
		if i == 0 {
			firstItem = it.ID
		}
	}

	if _, err := svcs.Characters.Add(ctx, domain.CharacterInput{Name: "Aria the Bold", Level: 3, PlayerID: p.ID}); err != nil {
		return false, fmt.Errorf("seed character: %w", err)
	}

	if _, err := svcs.Market.Add(ctx, domain.MarketListingInput{ItemID: firstItem, SellerID: p.ID, Price: 15.5, Quantity: 1}); err != nil {
		return false, fmt.Errorf("seed listing: %w", err)
	}
	return true, nil
}
