package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campstead/reservation-api/internal/core/domain"
)

const (
	collectionSpots    = "spots"
	collectionBookings = "bookings"
)

type SpotRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewSpotRepository(db *mongo.Database) *SpotRepository {
	return &SpotRepository{db: db, col: db.Collection(collectionSpots)}
}

func (r *SpotRepository) Create(ctx context.Context, spot *domain.Spot) (*domain.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionSpots)
	if err != nil {
		return nil, err
	}
	spot.ID = id

	if _, err := r.col.InsertOne(ctx, spot); err != nil {
		return nil, fmt.Errorf("insert spot: %w", err)
	}
	return spot, nil
}

func (r *SpotRepository) FindByID(ctx context.Context, id int64) (*domain.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var spot domain.Spot
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&spot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("find spot: %w", err)
	}
	return &spot, nil
}

func (r *SpotRepository) List(ctx context.Context) ([]domain.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	var spots []domain.Spot
	if err := cur.All(ctx, &spots); err != nil {
		return nil, fmt.Errorf("decode spots: %w", err)
	}
	return spots, nil
}

// Reserve is the single-winner availability transition: a compare-and-swap
// filtered on available==true that flips the flag and attaches the booking
// in one document update. The allocated booking id is written back into
// booking before the swap so the attachment already carries it.
func (r *SpotRepository) Reserve(ctx context.Context, spotID int64, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if booking.ID == 0 {
		id, err := nextID(ctx, r.db, collectionBookings)
		if err != nil {
			return err
		}
		booking.ID = id
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": spotID, "available": true},
		bson.M{"$set": bson.M{"available": false, "booking": booking}},
	)
	if err != nil {
		return fmt.Errorf("reserve spot: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the spot does not exist or it lost the race; look once more
		// to tell the two apart.
		if _, err := r.FindByID(ctx, spotID); err != nil {
			return err
		}
		return domain.ErrSpotAlreadyBooked
	}
	return nil
}

// SetAvailability overwrites the availability flag outside the reservation
// transition. Restoring availability detaches the active booking.
func (r *SpotRepository) SetAvailability(ctx context.Context, spotID int64, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"available": available}}
	if available {
		update["$unset"] = bson.M{"booking": ""}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": spotID}, update)
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSpotNotFound
	}
	return nil
}
