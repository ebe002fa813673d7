package domain

import "time"

// AvailabilityWindow is an admin-managed date range during which a spot may
// be offered. It is plain persistence plumbing and carries no invariant
// beyond existence.
type AvailabilityWindow struct {
	ID        int64     `json:"id" bson:"_id"`
	SpotID    int64     `json:"spot_id" bson:"spot_id"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
