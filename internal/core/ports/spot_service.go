package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// CreateSpotInput carries the data needed to create a new spot.
type CreateSpotInput struct {
	Name        string
	Description string
	Location    string
	Price       float64
}

type SpotService interface {
	Create(ctx context.Context, input CreateSpotInput) (*domain.Spot, error)
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
	List(ctx context.Context) ([]domain.Spot, error)
	OverrideAvailability(ctx context.Context, id int64, available bool) error
}
