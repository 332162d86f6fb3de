package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/database/generated"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	*table[domain.Item, domain.ItemInput, int]
	q *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{&table[domain.Item, domain.ItemInput, int]{
		db:           db,
		entity:       domain.EntityItem,
		name:         "items",
		idColumn:     "item_id",
		columns:      "item_id, name, description, rarity",
		orderBy:      "name ASC, item_id ASC",
		scan:         scanItem,
		writeColumns: []string{"name", "description", "rarity"},
		values: func(in domain.ItemInput) []any {
			return []any{in.Name, in.Description, in.RarityOrDefault()}
		},
	}, generated.New(db)}
}

// GetByName returns the first item with the given name in id order, or nil.
// Item names are not unique.
func (r *ItemRepository) GetByName(ctx context.Context, name string) (i *domain.Item, err error) {
	defer func(start time.Time) { r.observe(opGetByName, start, err) }(time.Now())
	row, err := r.q.GetItemByName(ctx, name)
	return fromRow(r.entity, "name", row, err, itemFromRow)
}

func itemFromRow(row generated.Item) domain.Item {
	i := domain.Item{ID: int(row.ItemID), Name: row.Name, Rarity: row.Rarity}
	if row.Description.Valid {
		d := row.Description.String
		i.Description = &d
	}
	return i
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var i domain.Item
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Rarity)
	return i, err
}
