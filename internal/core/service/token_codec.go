package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffdir/user-directory/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenCodec signs and validates access tokens with a symmetric key.
type TokenCodec struct {
	method jwt.SigningMethod
	secret []byte
	ttl    time.Duration
}

// accessClaims is the wire shape of the token payload. The user id travels
// as the registered subject claim.
type accessClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenCodec builds a codec for the given secret, algorithm identifier
// (HS256, HS384 or HS512) and token lifetime. Only HMAC methods are accepted
// since the configuration supplies a symmetric secret.
func NewTokenCodec(secret, algorithm string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token codec: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token codec: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token codec: algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenCodec{method: method, secret: []byte(secret), ttl: ttl}, nil
}

// Issue builds the claims for user and returns the signed token string.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(c.method, claims)
	return t.SignedString(c.secret)
}

// Validate verifies the signature and expiry of token and reconstructs the
// embedded claims. Expired tokens are rejected with domain.ErrTokenExpired;
// anything else that fails to verify or decode, including a subject that is
// not an integer, is domain.ErrInvalidToken.
func (c *TokenCodec) Validate(token string) (domain.Claims, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	out := domain.Claims{ID: id, Name: claims.Name, Role: claims.Role}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
