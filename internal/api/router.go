package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mindslate/hostel-complaints/docs"
	"github.com/mindslate/hostel-complaints/internal/api/handler"
	"github.com/mindslate/hostel-complaints/internal/api/middleware"
	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router wires into handlers and middleware.
type Dependencies struct {
	Log        zerolog.Logger
	Auth       ports.AuthService
	Complaints ports.ComplaintService
	Queries    ports.ComplaintQueryService
	Session    handler.SessionCookie

	// CORSOrigins are the frontend origins allowed to send the session cookie.
	CORSOrigins []string
	// RateLimitStore enables the global per-address limit when non-nil.
	RateLimitStore echomiddleware.RateLimiterStore
	// HealthChecks are pinged by GET /health/ready.
	HealthChecks []handlers.Check
	// HSTS enables Strict-Transport-Security (production only).
	HSTS bool
	// TrustProxy reads the caller address from X-Forwarded-For when the
	// request comes through a private-network proxy. Otherwise the socket
	// address is used and forwarding headers are ignored.
	TrustProxy bool
}

// NewRouter builds and returns the Echo instance with all routes registered,
// including Prometheus metrics and the swagger UI.
func NewRouter(deps Dependencies) *echo.Echo {
	e := newEcho(deps)

	e.Use(echoprometheus.NewMiddleware("hostel"))
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// newEcho builds the instance with the API routes only. It registers nothing
// global, so tests can build as many as they need.
func newEcho(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()
	e.IPExtractor = ipExtractor(deps.TrustProxy)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.SecureWithConfig(secureConfig(deps.HSTS)))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	if deps.RateLimitStore != nil {
		e.Use(middleware.RateLimit(deps.RateLimitStore))
	}

	// --- Health checks (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness) // pings mongo and redis

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Session)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Complaint routes (session required) ---
	complaintHandler := handler.NewComplaintHandler(deps.Complaints, deps.Queries)
	complaints := api.Group("/complaints", middleware.Auth(deps.Auth, deps.Session.Name))
	complaints.GET("", complaintHandler.List)
	complaints.POST("", complaintHandler.Create, middleware.RBAC(domain.RoleStudent))
	complaints.PATCH("/:id/status", complaintHandler.UpdateStatus, middleware.RBAC(domain.RoleCaretaker))

	return e
}

func ipExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

func secureConfig(hsts bool) echomiddleware.SecureConfig {
	cfg := echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
	}
	if hsts {
		cfg.HSTSMaxAge = 15552000
	}
	return cfg
}
