package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

type CommentService interface {
	Create(ctx context.Context, userID, spotID int64, text string, rating int) (*domain.Comment, error)
	ListBySpot(ctx context.Context, spotID int64) ([]domain.Comment, error)
}
