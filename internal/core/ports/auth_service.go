package ports

import (
	"context"

	"github.com/campstead/reservation-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, firstName, lastName, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// Claims is the resolved caller identity carried by a validated token.
// It lives for a single request and is never persisted.
type Claims struct {
	Username string
	Role     string
}

// TokenIssuer issues and validates signed bearer tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	Validate(token string) (Claims, error)
}
