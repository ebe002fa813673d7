package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// spotLocks is a lazily-populated table of per-spot mutexes. The lock for a
// spot is held across the whole availability read-modify-write so that
// concurrent reservation attempts on one spot serialize; locks are created
// on first use and reused for the life of the process.
type spotLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newSpotLocks() *spotLocks {
	return &spotLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *spotLocks) get(spotID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[spotID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[spotID] = m
	}
	return m
}

// BookingService owns the reservation transition: a spot can hold at most
// one active booking, and the availability flag flips true→false exactly
// once per occupancy.
type BookingService struct {
	bookings ports.BookingRepository
	spots    ports.SpotRepository
	cache    ports.SpotCache
	locks    *spotLocks
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, spots ports.SpotRepository, cache ports.SpotCache, logger zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		spots:    spots,
		cache:    cache,
		locks:    newSpotLocks(),
		logger:   logger,
	}
}

// Reserve books a spot for a date range. Of N concurrent calls for the same
// spot exactly one wins: the per-spot lock serializes attempts in-process and
// the repository transition is itself a compare-and-swap on the availability
// flag, so a loser always observes domain.ErrSpotAlreadyBooked.
func (s *BookingService) Reserve(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domain.ErrInvalidDateRange
	}

	lock := s.locks.get(input.SpotID)
	lock.Lock()
	defer lock.Unlock()

	booking := &domain.Booking{
		UserID:    input.UserID,
		SpotID:    input.SpotID,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		Status:    domain.BookingConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	// Commit point: flips the flag and attaches the booking in one step.
	if err := s.spots.Reserve(ctx, input.SpotID, booking); err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) || errors.Is(err, domain.ErrSpotAlreadyBooked) {
			s.logger.Warn().Err(err).
				Str("op", "reserve").
				Int64("spot_id", input.SpotID).
				Int64("user_id", input.UserID).
				Msg("reservation rejected")
			return nil, err
		}
		s.logger.Error().Err(err).
			Str("op", "reserve").
			Int64("spot_id", input.SpotID).
			Int64("user_id", input.UserID).
			Msg("reservation transition failed")
		return nil, err
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		// Roll the flag back so the spot is not stuck unavailable without a
		// booking record; the per-spot lock is still held, so no other
		// reservation can slip in between.
		if revertErr := s.spots.SetAvailability(ctx, input.SpotID, true); revertErr != nil {
			s.logger.Error().Err(revertErr).
				Int64("spot_id", input.SpotID).
				Msg("failed to revert availability after booking insert failure")
		}
		s.logger.Error().Err(err).
			Str("op", "reserve").
			Int64("spot_id", input.SpotID).
			Int64("user_id", input.UserID).
			Msg("booking insert failed")
		return nil, err
	}

	// The cached listing still shows the spot available; drop it so the next
	// read sees the flipped flag instead of waiting out the TTL.
	s.invalidateSpotCache(ctx)

	s.logger.Info().
		Int64("booking_id", created.ID).
		Int64("spot_id", created.SpotID).
		Int64("user_id", created.UserID).
		Msg("spot reserved")

	return created, nil
}

func (s *BookingService) invalidateSpotCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("spot cache invalidation failed")
	}
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Update edits a booking's dates or status. The spot's availability flag is
// deliberately left alone.
func (s *BookingService) Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error) {
	if !upd.CheckIn.IsZero() && !upd.CheckOut.IsZero() && !upd.CheckOut.After(upd.CheckIn) {
		return nil, domain.ErrInvalidDateRange
	}

	updated, err := s.bookings.Update(ctx, id, upd)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "update_booking").Int64("booking_id", id).Msg("booking update failed")
		return nil, err
	}
	return updated, nil
}

// Delete removes a booking. When the deleted booking is the one currently
// attached to its spot, the spot's availability is restored; otherwise the
// flag would claim an occupancy that no longer exists.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "delete_booking").Int64("booking_id", id).Msg("booking lookup failed")
		return err
	}

	lock := s.locks.get(booking.SpotID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.bookings.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("op", "delete_booking").Int64("booking_id", id).Msg("booking deletion failed")
		return err
	}

	spot, err := s.spots.FindByID(ctx, booking.SpotID)
	if err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			return nil
		}
		s.logger.Error().Err(err).Str("op", "delete_booking").Int64("spot_id", booking.SpotID).Msg("spot lookup failed")
		return err
	}

	if spot.Booking != nil && spot.Booking.ID == id {
		if err := s.spots.SetAvailability(ctx, booking.SpotID, true); err != nil {
			s.logger.Error().Err(err).
				Str("op", "delete_booking").
				Int64("spot_id", booking.SpotID).
				Msg("failed to restore availability")
			return err
		}
		s.invalidateSpotCache(ctx)
	}

	s.logger.Info().Int64("booking_id", id).Int64("spot_id", booking.SpotID).Msg("booking deleted")
	return nil
}
