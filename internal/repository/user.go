package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// User defines the interface for user account persistence.
// Only password hashes are stored.
type User interface {
	CRUD[domain.User, domain.UserCredentials, uuid.UUID]
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
