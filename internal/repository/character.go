package repository

import "github.com/osse101/GrammoRPG_Go/internal/domain"

// Character defines the interface for character persistence
type Character interface {
	NamedCRUD[domain.Character, domain.CharacterInput, int]
}
