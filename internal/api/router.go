package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/api/handler"
	"github.com/staffdir/user-directory/internal/api/middleware"
	"github.com/staffdir/user-directory/internal/core/ports"
	"github.com/staffdir/user-directory/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the Redis cache is disabled; audit may be nil when no
// audit trail is wired (tests). promReg receives the HTTP request metrics;
// tests pass a fresh registry so routers can be built repeatedly.
func NewRouter(store ports.UserStore, rdb *redis.Client, codec ports.TokenCodec, audit ports.AuditTrail, promReg prometheus.Registerer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "directory",
		Registerer: promReg,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(store, codec, log)
	directoryService := service.NewDirectoryService(store, log)
	authHandler := handler.NewAuthHandler(authService, audit)
	userHandler := handler.NewUserHandler(directoryService, log)
	authMiddleware := middleware.Auth(codec)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Directory routes (authentication required) ---
	e.GET("/users", userHandler.List, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
