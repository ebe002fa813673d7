package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// BookingRepository defines the interface for booking persistence. It never
// touches a spot's availability flag; that transition belongs to
// SpotRepository.Reserve.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}
