package ports

import (
	"context"
	"time"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// AvailabilityPatch is a selective edit of a window. Zero times leave the
// stored value untouched.
type AvailabilityPatch struct {
	StartDate time.Time
	EndDate   time.Time
}

type AvailabilityRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	ListBySpot(ctx context.Context, spotID int64) ([]domain.AvailabilityWindow, error)
	Update(ctx context.Context, id int64, patch AvailabilityPatch) (*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}
