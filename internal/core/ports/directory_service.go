package ports

import (
	"context"

	"github.com/staffdir/user-directory/internal/core/domain"
)

// UserFilter carries the optional listing criteria. ID is a pointer so that
// an explicit id=0 is distinguishable from "no id filter".
type UserFilter struct {
	ID   *int
	Name string
	Role string
}

// Empty reports whether no criterion was provided.
func (f UserFilter) Empty() bool {
	return f.ID == nil && f.Name == "" && f.Role == ""
}

type DirectoryService interface {
	List(ctx context.Context, filter UserFilter) ([]domain.PublicUser, error)
}
