package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

// AuthService verifies credentials against the user store and issues tokens.
type AuthService struct {
	store  ports.UserStore
	codec  ports.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(store ports.UserStore, codec ports.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{store: store, codec: codec, logger: logger}
}

// Authenticate scans the store in load order and returns the first record
// whose username and password both match exactly (case-sensitive). When
// usernames are duplicated, first match wins. The comparison is plain
// equality: the store holds plaintext demo credentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Login authenticates the credential pair and issues a signed access token
// for the matched user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", user.ID).Msg("token issuance failed")
		return "", nil, err
	}

	return token, user, nil
}
