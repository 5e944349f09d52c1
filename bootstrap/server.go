package bootstrap

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server for the
// observability surface. The client-facing scoop API lives elsewhere; this
// server only exposes health and run status.
func NewHTTPServer(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/v1/health"
		},
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			deps.Logger.Info("request",
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)

			return nil
		},
	}))

	e.GET("/v1/health", deps.Health.Health)
	e.GET("/v1/health/dependencies", deps.Health.Dependencies)
	e.GET("/v1/run/summary", deps.StatusAPI.LastRun)
	e.GET("/v1/run/metrics", deps.StatusAPI.Metrics)

	return e
}
