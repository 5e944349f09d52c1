package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"scoop-harvester/domain"
	"scoop-harvester/orchestrator"
)

// Run starts the harvest scheduler and the HTTP server, then blocks until a
// termination signal arrives. Shutdown cancels the in-flight run (safe per
// article: persisted records remain valid for the next run's dedup gate) and
// drains the HTTP server.
func Run(ctx context.Context, deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := orchestrator.NewJobRunner(orchestrator.JobConfig{
		Name:           "harvest",
		Interval:       deps.Config.Scheduler.Interval,
		RunImmediately: deps.Config.Scheduler.RunOnStart,
		// All feeds down means upstream trouble; hammering on the normal
		// interval only makes it worse.
		BackoffOnErrors: []error{domain.ErrAllFeedsUnavailable},
		InitialBackoff:  time.Minute,
		MaxBackoff:      30 * time.Minute,
	}, func(ctx context.Context) error {
		summary, err := deps.Pipeline.Run(ctx, nil)
		if summary != nil {
			deps.Status.Set(summary)
		}

		return err
	}, deps.Logger)

	runner.Start(ctx)
	defer runner.Stop()

	server := NewHTTPServer(deps)

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
		deps.Logger.Info("starting HTTP server", "addr", addr)

		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	return nil
}
