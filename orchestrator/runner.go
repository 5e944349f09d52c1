package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// JobConfig configures the harvest job runner.
type JobConfig struct {
	Name            string
	Interval        time.Duration
	InitialBackoff  time.Duration
	MaxBackoff      time.Duration
	BackoffOnErrors []error // Errors that trigger backoff instead of plain logging
	RunImmediately  bool    // Run once before the ticker starts
}

// JobRunner manages the lifecycle of the periodic harvest job. A single
// active runner is the expected deployment; overlap safety comes from the
// pipeline's dedup contract, not from locking here.
type JobRunner struct {
	config JobConfig
	fn     func(ctx context.Context) error
	logger *slog.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJobRunner creates a new job runner.
func NewJobRunner(config JobConfig, fn func(ctx context.Context) error, logger *slog.Logger) *JobRunner {
	return &JobRunner{
		config: config,
		fn:     fn,
		logger: logger,
	}
}

// Start starts the job runner in a goroutine.
func (r *JobRunner) Start(ctx context.Context) {
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(jobCtx)
	}()
}

// Stop stops the job runner and waits for the in-flight run to finish.
func (r *JobRunner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *JobRunner) run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "panic in job runner", "job", r.config.Name, "panic", rec)
		}
	}()

	if r.config.RunImmediately {
		if err := r.fn(ctx); err != nil {
			r.logger.ErrorContext(ctx, "initial job run failed", "job", r.config.Name, "error", err)
		}
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	backoff := time.Duration(0)

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "job stopped", "job", r.config.Name)
			return
		case <-ticker.C:
			if err := r.fn(ctx); err != nil {
				if r.shouldBackoff(err) {
					backoff = r.nextBackoff(backoff)
					r.logger.WarnContext(ctx, "job backing off",
						"job", r.config.Name, "backoff", backoff, "error", err)
					ticker.Reset(backoff)

					continue
				}

				r.logger.ErrorContext(ctx, "job failed", "job", r.config.Name, "error", err)
			} else if backoff > 0 {
				r.logger.InfoContext(ctx, "backoff cleared, resuming normal interval",
					"job", r.config.Name)
				backoff = 0
				ticker.Reset(r.config.Interval)
			}
		}
	}
}

func (r *JobRunner) shouldBackoff(err error) bool {
	for _, backoffErr := range r.config.BackoffOnErrors {
		if errors.Is(err, backoffErr) {
			return true
		}
	}

	return false
}

func (r *JobRunner) nextBackoff(current time.Duration) time.Duration {
	initial := r.config.InitialBackoff
	if initial == 0 {
		initial = 30 * time.Second
	}

	maxBackoff := r.config.MaxBackoff
	if maxBackoff == 0 {
		maxBackoff = 5 * time.Minute
	}

	if current == 0 {
		return initial
	}

	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}

	return next
}
