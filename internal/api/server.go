// Package api assembles the Echo HTTP server of flower-finder.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/flower-finder/internal/api/handlers"
	"github.com/donaldgifford/flower-finder/internal/api/middleware"
	"github.com/donaldgifford/flower-finder/internal/naver"
	"github.com/donaldgifford/flower-finder/internal/store"
	"github.com/donaldgifford/flower-finder/pkg/logger"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Store       store.Store
	Products    handlers.ProductCollector
	RateLimiter *naver.RateLimiter
	Logger      *slog.Logger
	CORSOrigins []string
	Version     string // reported in the OpenAPI document
}

// NewServer builds the Echo instance with middleware and routes registered.
// Business endpoints and the OpenAPI document are served through huma.
func NewServer(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(middleware.RequestLog(d.Logger))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(d.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	health := handlers.NewHealthHandler(d.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerOperations(e, d)

	return e
}

func registerOperations(e *echo.Echo, d Deps) huma.API {
	version := d.Version
	if version == "" {
		version = "dev"
	}

	api := humaecho.New(e, handlers.NewAPIConfig(version))
	handlers.RegisterFlowerRoutes(api, handlers.NewFlowerHandler(d.Store, d.Logger))
	handlers.RegisterShoppingRoutes(api, handlers.NewShoppingHandler(d.Products, d.Logger))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.RateLimiter))
	return api
}

// OpenAPIYAML renders the OpenAPI document of the API without starting a
// server.
func OpenAPIYAML(version string) ([]byte, error) {
	api := registerOperations(echo.New(), Deps{Version: version, Logger: logger.Discard()})
	out, err := api.OpenAPI().YAML()
	if err != nil {
		return nil, fmt.Errorf("rendering OpenAPI document: %w", err)
	}
	return out, nil
}
