package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/api/handler"
	"github.com/storehub/dashboard-system/internal/api/middleware"
	"github.com/storehub/dashboard-system/internal/core/domain"
	"github.com/storehub/dashboard-system/internal/core/ports"
)

// Dependencies carries the wired services the router exposes.
type Dependencies struct {
	Auth      ports.AuthService
	Catalog   ports.CatalogService
	Dashboard ports.DashboardService
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)
	e.PUT("/auth/password", authHandler.UpdatePassword, authMiddleware)

	// --- Catalog routes ---
	e.GET("/locations", catalogHandler.Locations)
	e.GET("/stores", catalogHandler.Stores, authMiddleware)
	e.GET("/stores/categories", catalogHandler.Categories, authMiddleware)
	e.POST("/stores/:id/rating", catalogHandler.Rate, authMiddleware,
		middleware.RBAC(domain.RoleUser))

	// --- Dashboard ---
	e.GET("/dashboard", dashboardHandler.Overview, authMiddleware,
		middleware.RBAC(domain.RoleAdmin, domain.RoleUser, domain.RoleStoreOwner))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the session store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
