package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// AvailabilityService manages the admin-maintained availability windows.
type AvailabilityService struct {
	repo   ports.AvailabilityRepository
	spots  ports.SpotRepository
	logger zerolog.Logger
}

func NewAvailabilityService(repo ports.AvailabilityRepository, spots ports.SpotRepository, logger zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{repo: repo, spots: spots, logger: logger}
}

func (s *AvailabilityService) Create(ctx context.Context, spotID int64, start, end time.Time) (*domain.AvailabilityWindow, error) {
	if !end.After(start) {
		return nil, domain.ErrInvalidDateRange
	}
	if _, err := s.spots.FindByID(ctx, spotID); err != nil {
		return nil, err
	}

	window := &domain.AvailabilityWindow{
		SpotID:    spotID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, window)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "create_window").Int64("spot_id", spotID).Msg("window creation failed")
		return nil, err
	}
	return created, nil
}

func (s *AvailabilityService) ListBySpot(ctx context.Context, spotID int64) ([]domain.AvailabilityWindow, error) {
	return s.repo.ListBySpot(ctx, spotID)
}

func (s *AvailabilityService) Update(ctx context.Context, id int64, patch ports.AvailabilityPatch) (*domain.AvailabilityWindow, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "update_window").Int64("window_id", id).Msg("window update failed")
		return nil, err
	}
	return updated, nil
}

func (s *AvailabilityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("op", "delete_window").Int64("window_id", id).Msg("window deletion failed")
		return err
	}
	return nil
}
