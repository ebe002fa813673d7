package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// UserService implements profile reads and maintenance on stored identities.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByUsername resolves a record by username. Bearer tokens carry the
// username, not the integer id, so this is how a caller reaches their own
// record.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update overwrites only the fields supplied in upd. A supplied password is
// re-hashed before it reaches the store; the plaintext never leaves here.
func (s *UserService) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	patch := ports.UserPatch{
		Username:  upd.Username,
		FirstName: upd.FirstName,
		LastName:  upd.LastName,
	}

	if upd.Password != "" {
		hash, err := hashPassword(upd.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = hash
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "update_user").Int64("user_id", id).Msg("user update failed")
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("op", "delete_user").Int64("user_id", id).Msg("user deletion failed")
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
