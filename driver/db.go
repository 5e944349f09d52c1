package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"scoop-harvester/config"
)

// InitPool creates the pgx connection pool and verifies connectivity.
func InitPool(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		logger.Error("failed to create database connection pool", "error", err)
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("failed to ping database", "error", err)

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to database", "host", cfg.Host, "database", cfg.Name)

	return pool, nil
}
