package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	*table[domain.Inventory, domain.InventoryInput, int]
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{&table[domain.Inventory, domain.InventoryInput, int]{
		db:           db,
		entity:       domain.EntityInventory,
		name:         "inventories",
		idColumn:     "inventory_id",
		columns:      "inventory_id, money, item_list",
		orderBy:      "inventory_id ASC",
		scan:         scanInventory,
		writeColumns: []string{"money", "item_list"},
		values: func(in domain.InventoryInput) []any {
			return []any{in.Money, in.ItemList}
		},
	}}
}

func scanInventory(row pgx.Row) (domain.Inventory, error) {
	var inv domain.Inventory
	err := row.Scan(&inv.ID, &inv.Money, &inv.ItemList)
	return inv, err
}
