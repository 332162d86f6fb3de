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

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	*table[domain.User, domain.UserCredentials, uuid.UUID]
	q *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{&table[domain.User, domain.UserCredentials, uuid.UUID]{
		db:           db,
		entity:       domain.EntityUser,
		name:         "users",
		idColumn:     "user_id",
		columns:      "user_id, email, password_hash",
		orderBy:      "email ASC, user_id ASC",
		scan:         scanUser,
		writeColumns: []string{"email", "password_hash"},
		values: func(in domain.UserCredentials) []any {
			return []any{in.Email, in.PasswordHash}
		},
	}, generated.New(db)}
}

// GetByEmail expects an already case-folded address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (u *domain.User, err error) {
	defer func(start time.Time) { r.observe(opGetByEmail, start, err) }(time.Now())
	row, err := r.q.GetUserByEmail(ctx, email)
	return fromRow(r.entity, "email", row, err, userFromRow)
}

func userFromRow(row generated.User) domain.User {
	return domain.User{ID: row.UserID, Email: row.Email, PasswordHash: row.PasswordHash}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash)
	return u, err
}
