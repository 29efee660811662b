package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig lists what NewRouter mounts. A nil Metrics handler leaves
// /metrics unmounted.
type RouterConfig struct {
	Governor *Governor
	Routes   []Route
	Metrics  http.Handler
}

// NewRouter builds the echo instance: health, metrics, API docs and every
// governed route.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterRoutes(e, cfg.Governor, cfg.Routes)
	return e
}
