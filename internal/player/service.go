// Package player implements the validating player service: names are unique
// and mutations require the player to exist.
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
	"github.com/osse101/GrammoRPG_Go/internal/repository"
)

// Service defines the player operations exposed to handlers
type Service interface {
	crud.NamedService[domain.Player, domain.PlayerInput, uuid.UUID]
}

type service struct {
	repo repository.Player
}

// NewService creates a player service backed by repo
func NewService(repo repository.Player) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]domain.Player, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	return s.repo.GetByName(ctx, domain.NormalizeName(name))
}

// Add rejects a name that is already taken. The lookup gives a clean error in
// the common case; the unique constraint in storage settles concurrent adds.
func (s *service) Add(ctx context.Context, in domain.PlayerInput) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	in.Name = domain.NormalizeName(in.Name)

	existing, err := s.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check player name: %w", err)
	}
	if existing != nil {
		log.Debug(LogMsgDuplicateName, "name", in.Name)
		return nil, s.reject(fmt.Errorf("%w: %s", domain.ErrDuplicateName, in.Name), ReasonDuplicateName)
	}

	created, err := s.repo.Add(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, s.reject(err, ReasonDuplicateName)
		}
		return nil, err
	}
	if created != nil {
		log.Info(LogMsgPlayerCreated, "player_id", created.ID, "name", created.Name)
	}
	return created, nil
}

// Update replaces every field of an existing player
func (s *service) Update(ctx context.Context, id uuid.UUID, in domain.PlayerInput) (*domain.Player, error) {
	in.Name = domain.NormalizeName(in.Name)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if current == nil {
		return nil, s.reject(fmt.Errorf("%w: player %s", domain.ErrNotFound, id), ReasonNotFound)
	}

	if in.Name != current.Name {
		other, err := s.repo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check player name: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, s.reject(fmt.Errorf("%w: %s", domain.ErrDuplicateName, in.Name), ReasonDuplicateName)
		}
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, s.reject(err, ReasonDuplicateName)
		}
		return nil, err
	}
	if updated == nil {
		// deleted between the check and the write
		return nil, s.reject(fmt.Errorf("%w: player %s", domain.ErrNotFound, id), ReasonNotFound)
	}
	return updated, nil
}

// Delete removes an existing player. Of two concurrent deletes, one succeeds
// and the other reports not found.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to load player: %w", err)
	}
	if current == nil {
		return false, s.reject(fmt.Errorf("%w: player %s", domain.ErrNotFound, id), ReasonNotFound)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, s.reject(fmt.Errorf("%w: player %s", domain.ErrNotFound, id), ReasonNotFound)
	}

	logger.FromContext(ctx).Info(LogMsgPlayerDeleted, "player_id", id)
	return true, nil
}

func (s *service) reject(err error, reason string) error {
	metrics.ServiceRejections.WithLabelValues(domain.EntityPlayer, reason).Inc()
	return err
}
