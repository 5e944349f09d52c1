package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scoop-harvester/models"
)

// EditionRepository implementation.
type editionRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewEditionRepository creates a new edition repository.
func NewEditionRepository(db *pgxpool.Pool, logger *slog.Logger) EditionRepository {
	return &editionRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateForDate returns the daily edition for the given date, creating
// it if absent. Concurrent creators converge on the same row through the
// unique date constraint.
func (r *editionRepository) GetOrCreateForDate(ctx context.Context, date time.Time) (*models.Edition, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to get or create edition: database connection is nil")
	}

	// Normalize by civil date components: truncating the absolute timestamp
	// would shift editions created around local midnight onto the prior day.
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	edition := &models.Edition{}

	err := r.db.QueryRow(ctx,
		`SELECT id, edition_date, created_at FROM editions WHERE edition_date = $1`, day).
		Scan(&edition.ID, &edition.Date, &edition.CreatedAt)
	if err == nil {
		return edition, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to query edition: %w", err)
	}

	edition = &models.Edition{
		ID:        uuid.NewString(),
		Date:      day,
		CreatedAt: time.Now().UTC(),
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO editions (id, edition_date, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (edition_date) DO NOTHING`,
		edition.ID, edition.Date, edition.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create edition: %w", err)
	}

	// Lost the race: another run created it between our read and write.
	if tag.RowsAffected() == 0 {
		err = r.db.QueryRow(ctx,
			`SELECT id, edition_date, created_at FROM editions WHERE edition_date = $1`, day).
			Scan(&edition.ID, &edition.Date, &edition.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read edition after conflict: %w", err)
		}

		return edition, nil
	}

	r.logger.InfoContext(ctx, "edition created", "edition_id", edition.ID, "date", day.Format("2006-01-02"))

	return edition, nil
}
