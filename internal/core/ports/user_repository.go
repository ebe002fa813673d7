package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

// UserPatch is a selective overwrite of stored user fields. Empty strings
// leave the stored value untouched. PasswordHash, when set, is already
// hashed by the caller.
type UserPatch struct {
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
}

// UserRepository defines the interface for identity persistence.
// Create must fail with domain.ErrUserExists when the username is taken,
// atomically with respect to concurrent registrations of the same username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error)
}
