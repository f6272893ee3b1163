package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

// DirectoryService lists public user records with optional filters.
type DirectoryService struct {
	store  ports.UserStore
	logger zerolog.Logger
}

func NewDirectoryService(store ports.UserStore, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: store, logger: logger}
}

// List applies the provided criteria conjunctively and projects the survivors
// to their public shape. Output preserves the store's load order. An id
// filter is an exact match; name and role are case-insensitive substring
// matches. An empty result is valid.
func (s *DirectoryService) List(ctx context.Context, filter ports.UserFilter) ([]domain.PublicUser, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(filter.Name)
	role := strings.ToLower(filter.Role)

	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		if filter.ID != nil && u.ID != *filter.ID {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(u.Name), name) {
			continue
		}
		if role != "" && !strings.Contains(strings.ToLower(u.Role), role) {
			continue
		}
		out = append(out, u.Public())
	}
	return out, nil
}
