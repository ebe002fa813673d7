package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListBySpot(ctx context.Context, spotID int64) ([]domain.Comment, error)
}
