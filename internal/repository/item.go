package repository

import "github.com/osse101/GrammoRPG_Go/internal/domain"

// Item defines the interface for item catalog persistence
type Item interface {
	NamedCRUD[domain.Item, domain.ItemInput, int]
}
