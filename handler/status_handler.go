package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scoop-harvester/metrics"
)

// StatusHandler exposes the last run summary and aggregate metrics so an
// external scheduler or monitor can observe the service.
type StatusHandler struct {
	store     *RunStatusStore
	collector *metrics.Collector
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(store *RunStatusStore, collector *metrics.Collector) *StatusHandler {
	return &StatusHandler{
		store:     store,
		collector: collector,
	}
}

// LastRun returns the most recent run summary.
func (h *StatusHandler) LastRun(c echo.Context) error {
	summary := h.store.Get()
	if summary == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"status": "no runs yet"})
	}

	return c.JSON(http.StatusOK, summary)
}

// Metrics returns the aggregate stage metrics.
func (h *StatusHandler) Metrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.collector.Snapshot())
}
