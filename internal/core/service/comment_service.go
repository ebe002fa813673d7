package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// CommentService stores and lists spot reviews.
type CommentService struct {
	repo   ports.CommentRepository
	spots  ports.SpotRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, spots ports.SpotRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, spots: spots, logger: logger}
}

// Create stores a comment after checking the spot exists.
func (s *CommentService) Create(ctx context.Context, userID, spotID int64, text string, rating int) (*domain.Comment, error) {
	if _, err := s.spots.FindByID(ctx, spotID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		UserID:    userID,
		SpotID:    spotID,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "create_comment").Int64("spot_id", spotID).Msg("comment creation failed")
		return nil, err
	}
	return created, nil
}

func (s *CommentService) ListBySpot(ctx context.Context, spotID int64) ([]domain.Comment, error) {
	return s.repo.ListBySpot(ctx, spotID)
}
