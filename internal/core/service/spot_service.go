package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// SpotService implements spot creation and browsing. The listing is served
// through a read-through cache; cache failures fall back to the store and
// are only logged.
type SpotService struct {
	repo   ports.SpotRepository
	cache  ports.SpotCache
	logger zerolog.Logger
}

func NewSpotService(repo ports.SpotRepository, cache ports.SpotCache, logger zerolog.Logger) *SpotService {
	return &SpotService{repo: repo, cache: cache, logger: logger}
}

func (s *SpotService) Create(ctx context.Context, input ports.CreateSpotInput) (*domain.Spot, error) {
	spot := &domain.Spot{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Price:       input.Price,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, spot)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "create_spot").Str("name", input.Name).Msg("spot creation failed")
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Int64("spot_id", created.ID).Str("name", created.Name).Msg("spot created")
	return created, nil
}

func (s *SpotService) GetByID(ctx context.Context, id int64) (*domain.Spot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SpotService) List(ctx context.Context) ([]domain.Spot, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("spot cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	spots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, spots); err != nil {
			s.logger.Warn().Err(err).Msg("spot cache write failed")
		}
	}
	return spots, nil
}

// OverrideAvailability is the explicit admin escape hatch for the
// availability flag, outside the reservation transition.
func (s *SpotService) OverrideAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		s.logger.Error().Err(err).
			Str("op", "override_availability").
			Int64("spot_id", id).
			Bool("available", available).
			Msg("availability override failed")
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Int64("spot_id", id).Bool("available", available).Msg("availability overridden")
	return nil
}

func (s *SpotService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("spot cache invalidation failed")
	}
}
