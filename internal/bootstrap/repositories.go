package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/database/postgres"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/player"
	"github.com/osse101/GrammoRPG_Go/internal/repository"
	"github.com/osse101/GrammoRPG_Go/internal/server"
	"github.com/osse101/GrammoRPG_Go/internal/user"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player    repository.Player
	Item      repository.Item
	Inventory repository.Inventory
	Character repository.Character
	Market    repository.Market
	User      repository.User
}

// InitializeRepositories creates every repository over the shared pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:    postgres.NewPlayerRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Character: postgres.NewCharacterRepository(dbPool),
		Market:    postgres.NewMarketRepository(dbPool),
		User:      postgres.NewUserRepository(dbPool),
	}
}

// InitializeServices wraps each repository in its service. Player and User
// enforce uniqueness and existence; the rest pass through.
func InitializeServices(repos *Repositories, bcryptCost int) server.Services {
	return server.Services{
		Players:     player.NewService(repos.Player),
		Items:       crud.NewNamedPassthrough[domain.Item, domain.ItemInput, int](repos.Item),
		Inventories: crud.NewPassthrough[domain.Inventory, domain.InventoryInput, int](repos.Inventory),
		Characters:  crud.NewNamedPassthrough[domain.Character, domain.CharacterInput, int](repos.Character),
		Market:      crud.NewPassthrough[domain.MarketListing, domain.MarketListingInput, int](repos.Market),
		Users:       user.NewService(repos.User, bcryptCost),
	}
}
