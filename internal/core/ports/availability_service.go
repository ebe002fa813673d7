package ports

import (
	"context"
	"time"

	"github.com/campstead/reservation-api/internal/core/domain"
)

type AvailabilityService interface {
	Create(ctx context.Context, spotID int64, start, end time.Time) (*domain.AvailabilityWindow, error)
	ListBySpot(ctx context.Context, spotID int64) ([]domain.AvailabilityWindow, error)
	Update(ctx context.Context, id int64, patch AvailabilityPatch) (*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}
