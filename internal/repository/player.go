package repository

import (
	"github.com/google/uuid"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	NamedCRUD[domain.Player, domain.PlayerInput, uuid.UUID]
}
