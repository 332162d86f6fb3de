package domain

import "github.com/google/uuid"

// Character is owned by a player
type Character struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	PlayerID uuid.UUID `json:"player_id"`
}

// CharacterInput carries every mutable character field
type CharacterInput struct {
	Name     string    `json:"name" validate:"required,max=50"`
	Level    int       `json:"level" validate:"min=1,max=2147483647"`
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}
