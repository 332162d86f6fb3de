// Package user implements the account service. Emails are case-folded and
// unique; passwords are stored only as bcrypt hashes.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
	"github.com/osse101/GrammoRPG_Go/internal/repository"
)

// Service defines the user operations exposed to handlers
type Service interface {
	crud.Service[domain.User, domain.UserInput, uuid.UUID]
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type service struct {
	repo repository.User
	cost int
}

// NewService creates a user service. A cost outside bcrypt's range falls back
// to bcrypt.DefaultCost.
func NewService(repo repository.User, bcryptCost int) Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{repo: repo, cost: bcryptCost}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *service) Add(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCheckEmailFailed, err)
	}
	if existing != nil {
		logger.FromContext(ctx).Debug(LogMsgDuplicateEmail)
		return nil, s.reject(domain.ErrDuplicateEmail, ReasonDuplicateEmail)
	}

	creds, err := s.credentials(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, s.reject(err, ReasonDuplicateEmail)
		}
		return nil, err
	}
	if created != nil {
		logger.FromContext(ctx).Info(LogMsgUserCreated, "user_id", created.ID)
	}
	return created, nil
}

// Update replaces the email and password of an existing user
func (s *service) Update(ctx context.Context, id uuid.UUID, in domain.UserInput) (*domain.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadUserFailed, err)
	}
	if current == nil {
		return nil, s.reject(fmt.Errorf("%w: user %s", domain.ErrNotFound, id), ReasonNotFound)
	}

	creds, err := s.credentials(in)
	if err != nil {
		return nil, err
	}

	if creds.Email != current.Email {
		other, err := s.repo.GetByEmail(ctx, creds.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCheckEmailFailed, err)
		}
		if other != nil && other.ID != id {
			return nil, s.reject(domain.ErrDuplicateEmail, ReasonDuplicateEmail)
		}
	}

	updated, err := s.repo.Update(ctx, id, creds)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, s.reject(err, ReasonDuplicateEmail)
		}
		return nil, err
	}
	if updated == nil {
		return nil, s.reject(fmt.Errorf("%w: user %s", domain.ErrNotFound, id), ReasonNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgUserUpdated, "user_id", id)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgLoadUserFailed, err)
	}
	if current == nil {
		return false, s.reject(fmt.Errorf("%w: user %s", domain.ErrNotFound, id), ReasonNotFound)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, s.reject(fmt.Errorf("%w: user %s", domain.ErrNotFound, id), ReasonNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgUserDeleted, "user_id", id)
	return true, nil
}

func (s *service) credentials(in domain.UserInput) (domain.UserCredentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.UserCredentials{}, fmt.Errorf("%w: password longer than %d bytes", domain.ErrInvalidInput, domain.MaxPasswordLength)
		}
		return domain.UserCredentials{}, fmt.Errorf("%s: %w", ErrMsgHashPasswordFailed, err)
	}
	return domain.UserCredentials{
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: string(hash),
	}, nil
}

func (s *service) reject(err error, reason string) error {
	metrics.ServiceRejections.WithLabelValues(domain.EntityUser, reason).Inc()
	return err
}
