package repository

import "github.com/osse101/GrammoRPG_Go/internal/domain"

// Inventory defines the interface for inventory persistence
type Inventory interface {
	CRUD[domain.Inventory, domain.InventoryInput, int]
}
