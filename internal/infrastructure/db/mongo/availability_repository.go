package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

const collectionAvailability = "availability_windows"

type AvailabilityRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{db: db, col: db.Collection(collectionAvailability)}
}

func (r *AvailabilityRepository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionAvailability)
	if err != nil {
		return nil, err
	}
	window.ID = id

	if _, err := r.col.InsertOne(ctx, window); err != nil {
		return nil, fmt.Errorf("insert window: %w", err)
	}
	return window, nil
}

func (r *AvailabilityRepository) ListBySpot(ctx context.Context, spotID int64) ([]domain.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"spot_id": spotID})
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	var windows []domain.AvailabilityWindow
	if err := cur.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("decode windows: %w", err)
	}
	return windows, nil
}

func (r *AvailabilityRepository) Update(ctx context.Context, id int64, patch ports.AvailabilityPatch) (*domain.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if !patch.StartDate.IsZero() {
		set["start_date"] = patch.StartDate
	}
	if !patch.EndDate.IsZero() {
		set["end_date"] = patch.EndDate
	}
	if len(set) == 0 {
		var window domain.AvailabilityWindow
		if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&window); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrAvailabilityNotFound
			}
			return nil, fmt.Errorf("find window: %w", err)
		}
		return &window, nil
	}

	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var window domain.AvailabilityWindow
	if err := res.Decode(&window); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("update window: %w", err)
	}
	return &window, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete window: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAvailabilityNotFound
	}
	return nil
}
