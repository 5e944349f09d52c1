// ABOUTME: Publishes run milestones to a Redis Stream so external monitors
// ABOUTME: can tail live status; publish failures never feed back into a run
package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"scoop-harvester/config"
)

// ProgressPublisher writes progress events to a Redis Stream. A nil
// publisher is valid and drops every event.
type ProgressPublisher struct {
	client    *redis.Client
	streamKey string
	logger    *slog.Logger
}

// NewProgressPublisher creates a publisher, or nil when no Redis address is
// configured.
func NewProgressPublisher(cfg *config.RedisConfig, logger *slog.Logger) *ProgressPublisher {
	if cfg.Addr == "" {
		return nil
	}

	return &ProgressPublisher{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr}),
		streamKey: cfg.StreamKey,
		logger:    logger,
	}
}

// Publish appends one progress event to the stream.
func (p *ProgressPublisher) Publish(ctx context.Context, runID, phase, message string) {
	if p == nil {
		return
	}

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamKey,
		Values: map[string]interface{}{
			"run_id":  runID,
			"phase":   phase,
			"message": message,
			"ts":      time.Now().UTC().Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		p.logger.Warn("failed to publish progress event", "phase", phase, "error", err)
	}
}

// Close releases the Redis connection.
func (p *ProgressPublisher) Close() error {
	if p == nil {
		return nil
	}

	return p.client.Close()
}
