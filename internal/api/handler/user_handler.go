package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/api/metrics"
	"github.com/staffdir/user-directory/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory listing.
type UserHandler struct {
	directory ports.DirectoryService
	logger    zerolog.Logger
}

func NewUserHandler(directory ports.DirectoryService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{directory: directory, logger: logger}
}

// List returns the public user records matching the optional filters. The
// route is authentication-gated only; any valid caller sees the same records.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     int     false  "Exact id match"
// @Param        name  query     string  false  "Case-insensitive name substring"
// @Param        role  query     string  false  "Case-insensitive role substring"
// @Success      200   {array}   domain.PublicUser
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	callerID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	start := time.Now()
	users, err := h.directory.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	metrics.QueriesTotal.WithLabelValues(strconv.FormatBool(!filter.Empty())).Inc()

	h.logger.Debug().
		Int("caller_id", callerID).
		Int("results", len(users)).
		Msg("directory query")

	return c.JSON(http.StatusOK, users)
}

// parseFilter reads the optional query criteria. An id parameter that is
// present but not an integer is a client error; an absent id leaves the
// criterion nil so it is distinguishable from an explicit id=0.
func parseFilter(c echo.Context) (ports.UserFilter, error) {
	filter := ports.UserFilter{
		Name: c.QueryParam("name"),
		Role: c.QueryParam("role"),
	}

	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return ports.UserFilter{}, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
		}
		filter.ID = &id
	}
	return filter, nil
}
