package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/dinerate/review-service/docs"
	"github.com/dinerate/review-service/internal/api/handler"
	"github.com/dinerate/review-service/internal/api/middleware"
	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/service"
	"github.com/dinerate/review-service/internal/infrastructure/db/postgres"
	"github.com/dinerate/review-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Authentication is a per-route declaration: routes that list the auth
// middleware require a valid bearer token, and PUT additionally requires an
// admin or editor role.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reviews"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokenService)
	reviewService := service.NewReviewService(reviewRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	auth := middleware.Auth(tokenService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "hello world")
	})
	e.POST("/login", authHandler.Login)
	e.GET("/reviews", reviewHandler.List)

	// --- Protected routes ---
	e.POST("/reviews", reviewHandler.Create, auth)
	e.PUT("/reviews/:id", reviewHandler.Update, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleEditor))
	e.DELETE("/reviews/:id", reviewHandler.Delete, auth)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
