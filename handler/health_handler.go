package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger verifies backing-store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DependencyChecker verifies an external collaborator is reachable.
type DependencyChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthHandler serves liveness and dependency checks.
type HealthHandler struct {
	db         Pinger
	completion DependencyChecker
	logger     *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, completion DependencyChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:         db,
		completion: completion,
		logger:     logger,
	}
}

// Health reports service liveness plus store connectivity.
func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			h.logger.Error("database ping failed", "error", err)

			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"reason": "database unreachable",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "scoop-harvester",
	})
}

// Dependencies checks the completion service, which dominates run latency
// and fails most often.
func (h *HealthHandler) Dependencies(c echo.Context) error {
	if h.completion != nil {
		if err := h.completion.CheckHealth(c.Request().Context()); err != nil {
			h.logger.Error("completion service health check failed", "error", err)

			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"reason": "completion service unreachable",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
