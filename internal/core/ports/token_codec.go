package ports

import "github.com/staffdir/user-directory/internal/core/domain"

// TokenCodec issues and validates signed bearer tokens. Validate is the only
// decode path; callers never inspect token payloads directly.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	Validate(token string) (domain.Claims, error)
}
