package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/user-directory/internal/api/metrics"
	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

// Context keys set for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxName   = "name"
	CtxRole   = "role"
)

// Auth is the access gate for protected routes. It extracts the bearer token
// from the Authorization header and delegates to the token codec. A missing
// or malformed header is "not authenticated", distinct from a token that is
// present but fails validation. On success the claims are injected into the
// echo context.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrNotAuthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrNotAuthenticated
			}

			claims, err := codec.Validate(parts[1])
			if err != nil {
				if err == domain.ErrTokenExpired {
					metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(CtxUserID, claims.ID)
			c.Set(CtxName, claims.Name)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
