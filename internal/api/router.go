package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/api/handler"
	"github.com/catalogadmin/console/internal/api/middleware"
	"github.com/catalogadmin/console/internal/core/ports"
	"github.com/catalogadmin/console/internal/core/service"
	"github.com/catalogadmin/console/internal/pkg/validation"
)

// Store is what the catalog API keeps its data in.
type Store interface {
	ports.AccountRepository
	ports.CatalogRepository
}

type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
	// Metrics receives the HTTP metrics and is served on /metrics.
	// Nil disables both.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store Store, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)
	e.Validator = handler.NewValidator(validation.New())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "catalog_api",
			Registerer: cfg.Metrics,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: cfg.Metrics,
		}))
	}

	// --- Dependencies ---
	authService := service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(store)
	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Health probe (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/users/", authHandler.Register)

	// --- Catalog routes ---
	e.GET("/users/", catalogHandler.ListUsers, requireAuth)
	e.POST("/categories/", catalogHandler.CreateCategory, requireAuth)
	e.GET("/categories/", catalogHandler.ListCategories, requireAuth)
	e.POST("/products/", catalogHandler.CreateProduct, requireAuth)
	e.GET("/products/", catalogHandler.ListProducts, requireAuth)
	e.POST("/orders/", catalogHandler.CreateOrder, requireAuth)
	e.GET("/orders/", catalogHandler.ListOrders, requireAuth)
	e.POST("/order-items/", catalogHandler.AddOrderItem, requireAuth)

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= 500:
				evt = log.Error().Err(v.Error)
			case v.Status >= 400:
				evt = log.Warn()
			}
			if user, ok := c.Get(middleware.UsernameKey).(string); ok {
				evt = evt.Str("user", user)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
