package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/database/generated"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	*table[domain.Player, domain.PlayerInput, uuid.UUID]
	q *generated.Queries
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{&table[domain.Player, domain.PlayerInput, uuid.UUID]{
		db:           db,
		entity:       domain.EntityPlayer,
		name:         "players",
		idColumn:     "player_id",
		columns:      "player_id, name, strength, hp, max_hp, inventory_id",
		orderBy:      "name ASC, player_id ASC",
		scan:         scanPlayer,
		writeColumns: []string{"name", "strength", "hp", "max_hp", "inventory_id"},
		values: func(in domain.PlayerInput) []any {
			return []any{in.Name, in.Strength, in.HP, in.MaxHP, in.InventoryID}
		},
	}, generated.New(db)}
}

// GetByName returns the player with the given name, or nil
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (p *domain.Player, err error) {
	defer func(start time.Time) { r.observe(opGetByName, start, err) }(time.Now())
	row, err := r.q.GetPlayerByName(ctx, name)
	return fromRow(r.entity, "name", row, err, playerFromRow)
}

func playerFromRow(row generated.Player) domain.Player {
	return domain.Player{
		ID:          row.PlayerID,
		Name:        row.Name,
		Strength:    int(row.Strength),
		HP:          int(row.Hp),
		MaxHP:       int(row.MaxHp),
		InventoryID: int(row.InventoryID),
	}
}

func scanPlayer(row pgx.Row) (domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Name, &p.Strength, &p.HP, &p.MaxHP, &p.InventoryID)
	return p, err
}
