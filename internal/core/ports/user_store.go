package ports

import (
	"context"

	"github.com/staffdir/user-directory/internal/core/domain"
)

// UserStore is the read-only credential store. LoadUsers returns the full
// record set in the store's load order; implementations must report storage
// failures as domain.ErrStoreUnavailable and never return an empty slice in
// place of an error.
type UserStore interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
	Ping(ctx context.Context) error
}
