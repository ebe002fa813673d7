package domain

import "time"

// Spot is a bookable camping spot. Available is false exactly while an
// active Booking is attached; only the reservation transition and the
// explicit admin override may flip it.
type Spot struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Location    string    `json:"location" bson:"location"`
	Price       float64   `json:"price" bson:"price"`
	Available   bool      `json:"available" bson:"available"`
	Booking     *Booking  `json:"booking,omitempty" bson:"booking,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
