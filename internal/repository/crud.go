package repository

import "context"

// CRUD is the storage contract shared by every entity table.
// Absence is not an error: lookups and updates return nil, deletes return false.
type CRUD[E any, In any, ID comparable] interface {
	GetByID(ctx context.Context, id ID) (*E, error)
	// GetAll returns every row ordered by the entity's natural sort key
	GetAll(ctx context.Context) ([]E, error)
	// Add inserts a row and returns it as read back from storage
	Add(ctx context.Context, in In) (*E, error)
	// Update replaces every mutable field of an existing row
	Update(ctx context.Context, id ID, in In) (*E, error)
	Delete(ctx context.Context, id ID) (bool, error)
}

// NameLookup finds the first row with the given name in sort order
type NameLookup[E any] interface {
	GetByName(ctx context.Context, name string) (*E, error)
}

// NamedCRUD is a CRUD table with a name column
type NamedCRUD[E any, In any, ID comparable] interface {
	CRUD[E, In, ID]
	NameLookup[E]
}
