package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/user-directory/internal/api/metrics"
	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditTrail
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditTrail) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates a credential pair and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			h.recordAttempt(c, req.Username, 0, domain.AuditOutcomeFailure)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.recordAttempt(c, user.Username, user.ID, domain.AuditOutcomeSuccess)

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) recordAttempt(c echo.Context, username string, userID int, outcome string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuthEventInput{
		Username:  username,
		UserID:    userID,
		Outcome:   outcome,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}
