package ports

import (
	"context"
	"time"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// ReserveInput carries all data needed to reserve a spot.
type ReserveInput struct {
	SpotID   int64
	UserID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

type BookingService interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}
