package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/user-directory/internal/api/middleware"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing user id
// means the route was wired without the gate, which is a server bug, but it
// is surfaced as 401 rather than leaking data.
func ctxIdentity(c echo.Context) (userID int, name, role string, err error) {
	userID, ok := c.Get(middleware.CtxUserID).(int)
	if !ok {
		return 0, "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ = c.Get(middleware.CtxName).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, name, role, nil
}
