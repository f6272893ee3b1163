package ports

import (
	"context"

	"github.com/staffdir/user-directory/internal/core/domain"
)

type AuthService interface {
	// Authenticate returns the first stored record whose username and
	// password both match exactly, or domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// Login authenticates and issues a signed access token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
