package domain

import "time"

// Comment is a user review of a spot with a numeric rating.
type Comment struct {
	ID        int64     `json:"id" bson:"_id"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	SpotID    int64     `json:"spot_id" bson:"spot_id"`
	Text      string    `json:"text" bson:"text"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
