package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoop-harvester/metrics"
	"scoop-harvester/models"
	"scoop-harvester/utils/logger"
)

func testLogger() *slog.Logger {
	return logger.NewWithOutput(io.Discard, &logger.LoggerConfig{
		Level:       "error",
		Format:      "text",
		ServiceName: "test",
	})
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubChecker struct{ err error }

func (s stubChecker) CheckHealth(context.Context) error { return s.err }

func doRequest(t *testing.T, handler echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	return rec
}

func TestHealthHandler(t *testing.T) {
	t.Run("should report ok when the database responds", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{}, stubChecker{}, testLogger())

		rec := doRequest(t, h.Health, "/v1/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("should report degraded when the database is unreachable", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{err: errors.New("refused")}, stubChecker{}, testLogger())

		rec := doRequest(t, h.Health, "/v1/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database unreachable")
	})

	t.Run("should report ok when the completion service responds", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{}, stubChecker{}, testLogger())

		rec := doRequest(t, h.Dependencies, "/v1/health/dependencies")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should report degraded when the completion service is down", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{}, stubChecker{err: errors.New("timeout")}, testLogger())

		rec := doRequest(t, h.Dependencies, "/v1/health/dependencies")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "completion service unreachable")
	})
}

func TestStatusHandler(t *testing.T) {
	t.Run("should return 404 before the first run", func(t *testing.T) {
		h := NewStatusHandler(NewRunStatusStore(), metrics.NewCollector())

		rec := doRequest(t, h.LastRun, "/v1/run/summary")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no runs yet")
	})

	t.Run("should return the last run summary", func(t *testing.T) {
		store := NewRunStatusStore()
		store.Set(&models.RunSummary{
			Status:         models.RunStatusCompleted,
			EditionID:      "edition-1",
			ProcessedCount: 3,
			FinishedAt:     time.Now(),
		})
		h := NewStatusHandler(store, metrics.NewCollector())

		rec := doRequest(t, h.LastRun, "/v1/run/summary")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"edition_id":"edition-1"`)
		assert.Contains(t, rec.Body.String(), `"processed_count":3`)
	})

	t.Run("should return aggregate metrics", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.ObserveRun(&models.RunSummary{
			Status: models.RunStatusCompleted,
			Articles: []models.ArticleTiming{
				{Status: models.ArticleStatusCreated},
			},
		})
		h := NewStatusHandler(NewRunStatusStore(), collector)

		rec := doRequest(t, h.Metrics, "/v1/run/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"runs_completed":1`)
		assert.Contains(t, rec.Body.String(), `"scoops_created":1`)
	})
}

func TestRunStatusStore(t *testing.T) {
	t.Run("should replace the stored summary", func(t *testing.T) {
		store := NewRunStatusStore()

		assert.Nil(t, store.Get())

		first := &models.RunSummary{EditionID: "a"}
		store.Set(first)
		assert.Same(t, first, store.Get())

		second := &models.RunSummary{EditionID: "b"}
		store.Set(second)
		assert.Same(t, second, store.Get())
	})
}
