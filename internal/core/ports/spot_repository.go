package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// SpotRepository defines the interface for spot persistence.
//
// Reserve is the single-winner transition of the availability flag: it must
// atomically flip Available true→false and attach the booking, failing with
// domain.ErrSpotAlreadyBooked when the flag is already false and
// domain.ErrSpotNotFound when the spot does not exist. Concurrent Reserve
// calls on the same spot must never both succeed.
type SpotRepository interface {
	Create(ctx context.Context, spot *domain.Spot) (*domain.Spot, error)
	FindByID(ctx context.Context, id int64) (*domain.Spot, error)
	List(ctx context.Context) ([]domain.Spot, error)
	Reserve(ctx context.Context, spotID int64, booking *domain.Booking) error
	SetAvailability(ctx context.Context, spotID int64, available bool) error
}

// SpotCache is a read-through cache for the spot listing. Get returns
// (nil, nil) on a miss.
type SpotCache interface {
	Get(ctx context.Context) ([]domain.Spot, error)
	Set(ctx context.Context, spots []domain.Spot) error
	Invalidate(ctx context.Context) error
}
