package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrStoreUnavailable = errors.New("user store unavailable")

// User is a directory record as loaded from the credential store.
// Passwords are stored in plain text: the store holds static demo data and
// this service never writes to it.
type User struct {
	ID       int    `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role" bson:"role"`
}

// PublicUser is the projection of a User that is safe to return to callers.
// It carries no credential fields.
type PublicUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Public returns the public-safe projection of u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}

// Claims is the identity embedded in a signed access token.
type Claims struct {
	ID        int
	Name      string
	Role      string
	ExpiresAt time.Time
}

// Login audit outcomes.
const (
	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)
