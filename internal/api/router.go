package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/homestay/booking-gate/docs"
	"github.com/homestay/booking-gate/internal/api/handler"
	"github.com/homestay/booking-gate/internal/api/middleware"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// Dependencies are the collaborators the HTTP surface is built from.
// Mongo and Redis are nil when the matching backend is not configured.
type Dependencies struct {
	Session     ports.SessionStore
	Routes      ports.RouteResolver
	Guard       ports.RouteGuard
	Preferences ports.PreferenceService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger

	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "homestay",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Session)
	navHandler := handler.NewNavigationHandler(deps.Routes, deps.Guard, deps.Session)
	pageHandler := handler.NewPageHandler(deps.Routes, deps.Session)
	prefHandler := handler.NewPreferenceHandler(deps.Preferences)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Navigation ---
	e.GET("/navigation/decision", navHandler.Decision)
	e.GET("/navigation/menu", navHandler.Menu)

	// --- Preferences ---
	e.GET("/preferences/theme", prefHandler.Theme)
	e.PUT("/preferences/theme", prefHandler.SetTheme)
	e.POST("/preferences/theme/toggle", prefHandler.ToggleTheme)

	// --- Health probes, metrics and docs (no guard) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Pages: the route table decides, first declared match wins ---
	pageGuard := middleware.Guard(deps.Routes, deps.Guard, deps.Session)
	e.GET("/", pageHandler.Show, pageGuard)
	e.GET("/*", pageHandler.Show, pageGuard)

	return e
}
