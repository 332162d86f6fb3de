package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/database/generated"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	*table[domain.Character, domain.CharacterInput, int]
	q *generated.Queries
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{&table[domain.Character, domain.CharacterInput, int]{
		db:           db,
		entity:       domain.EntityCharacter,
		name:         "characters",
		idColumn:     "character_id",
		columns:      "character_id, name, level, player_id",
		orderBy:      "name ASC, character_id ASC",
		scan:         scanCharacter,
		writeColumns: []string{"name", "level", "player_id"},
		values: func(in domain.CharacterInput) []any {
			return []any{in.Name, in.Level, in.PlayerID}
		},
	}, generated.New(db)}
}

// GetByName returns the first character with the given name, or nil.
// Character names are not unique.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (c *domain.Character, err error) {
	defer func(start time.Time) { r.observe(opGetByName, start, err) }(time.Now())
	row, err := r.q.GetCharacterByName(ctx, name)
	return fromRow(r.entity, "name", row, err, characterFromRow)
}

func characterFromRow(row generated.Character) domain.Character {
	return domain.Character{ID: int(row.CharacterID), Name: row.Name, Level: int(row.Level), PlayerID: row.PlayerID}
}

func scanCharacter(row pgx.Row) (domain.Character, error) {
	var c domain.Character
	err := row.Scan(&c.ID, &c.Name, &c.Level, &c.PlayerID)
	return c, err
}
