// Package crud defines the capability set every entity service exposes and a
// pass-through implementation for entities without extra rules.
package crud

import (
	"context"

	"github.com/osse101/GrammoRPG_Go/internal/repository"
)

// Service is what the dispatch layer is written against. Absence is reported
// as nil or false; domain violations as domain errors; anything else is a
// storage failure.
type Service[E any, In any, ID comparable] interface {
	GetByID(ctx context.Context, id ID) (*E, error)
	GetAll(ctx context.Context) ([]E, error)
	Add(ctx context.Context, in In) (*E, error)
	Update(ctx context.Context, id ID, in In) (*E, error)
	Delete(ctx context.Context, id ID) (bool, error)
}

// NameLookup is implemented by services whose entities have a name
type NameLookup[E any] interface {
	GetByName(ctx context.Context, name string) (*E, error)
}

// NamedService is a Service that also supports name lookups
type NamedService[E any, In any, ID comparable] interface {
	Service[E, In, ID]
	NameLookup[E]
}

// Passthrough delegates every call to its repository unchanged
type Passthrough[E any, In any, ID comparable] struct {
	repo repository.CRUD[E, In, ID]
}

// NewPassthrough wraps repo without adding rules
func NewPassthrough[E any, In any, ID comparable](repo repository.CRUD[E, In, ID]) *Passthrough[E, In, ID] {
	return &Passthrough[E, In, ID]{repo: repo}
}

func (s *Passthrough[E, In, ID]) GetByID(ctx context.Context, id ID) (*E, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Passthrough[E, In, ID]) GetAll(ctx context.Context) ([]E, error) {
	return s.repo.GetAll(ctx)
}

func (s *Passthrough[E, In, ID]) Add(ctx context.Context, in In) (*E, error) {
	return s.repo.Add(ctx, in)
}

func (s *Passthrough[E, In, ID]) Update(ctx context.Context, id ID, in In) (*E, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Passthrough[E, In, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// NamedPassthrough adds a pass-through name lookup
type NamedPassthrough[E any, In any, ID comparable] struct {
	*Passthrough[E, In, ID]
	names repository.NameLookup[E]
}

// NewNamedPassthrough wraps a repository that has a name column
func NewNamedPassthrough[E any, In any, ID comparable](repo repository.NamedCRUD[E, In, ID]) *NamedPassthrough[E, In, ID] {
	return &NamedPassthrough[E, In, ID]{
		Passthrough: NewPassthrough[E, In, ID](repo),
		names:       repo,
	}
}

func (s *NamedPassthrough[E, In, ID]) GetByName(ctx context.Context, name string) (*E, error) {
	return s.names.GetByName(ctx, name)
}
