package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records a reservation of a spot for a date range. A booking is
// created only through the atomic reserve transition; by the time it exists
// its spot's availability flag is already false.
type Booking struct {
	ID        int64         `json:"id" bson:"_id"`
	UserID    int64         `json:"user_id" bson:"user_id"`
	SpotID    int64         `json:"spot_id" bson:"spot_id"`
	CheckIn   time.Time     `json:"check_in" bson:"check_in"`
	CheckOut  time.Time     `json:"check_out" bson:"check_out"`
	Status    BookingStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// BookingUpdate carries an admin edit of an existing booking. Zero values
// leave the stored field untouched. The spot's availability flag is never
// affected by an update.
type BookingUpdate struct {
	CheckIn  time.Time
	CheckOut time.Time
	Status   BookingStatus
}
