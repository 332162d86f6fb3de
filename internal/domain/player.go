package domain

import "github.com/google/uuid"

// Player is a registered game participant
type Player struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Strength    int       `json:"strength"`
	HP          int       `json:"hp"`
	MaxHP       int       `json:"max_hp"`
	InventoryID int       `json:"inventory_id"`
}

// PlayerInput carries every mutable player field
type PlayerInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Strength    int    `json:"strength" validate:"min=0,max=2147483647"`
	HP          int    `json:"hp" validate:"min=0,ltefield=MaxHP"`
	MaxHP       int    `json:"max_hp" validate:"min=1,max=2147483647"`
	InventoryID int    `json:"inventory_id" validate:"required,min=1,max=2147483647"`
}
