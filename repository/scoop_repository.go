package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"scoop-harvester/domain"
	"scoop-harvester/models"
)

// sourceURLPageSize bounds each page of the existing-link snapshot read.
const sourceURLPageSize = 500

// ScoopRepository implementation.
type scoopRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewScoopRepository creates a new scoop repository.
func NewScoopRepository(db *pgxpool.Pool, logger *slog.Logger) ScoopRepository {
	return &scoopRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a scoop record. The insert is conditional on source_url
// uniqueness at the store level: a conflicting concurrent insert surfaces as
// domain.ErrDuplicateScoop rather than a second record.
func (r *scoopRepository) Create(ctx context.Context, scoop *models.ScoopRecord) error {
	if r.db == nil {
		return fmt.Errorf("failed to create scoop: database connection is nil")
	}

	if scoop.ID == "" {
		scoop.ID = uuid.NewString()
	}
	if scoop.CreatedAt.IsZero() {
		scoop.CreatedAt = time.Now().UTC()
	}

	variants, err := json.Marshal(scoop.Variants)
	if err != nil {
		return fmt.Errorf("failed to marshal variants: %w", err)
	}

	tags, err := json.Marshal(scoop.TopicTags)
	if err != nil {
		return fmt.Errorf("failed to marshal topic tags: %w", err)
	}

	reactions, err := json.Marshal(scoop.AudienceReaction)
	if err != nil {
		return fmt.Errorf("failed to marshal audience reaction: %w", err)
	}

	query := `
		INSERT INTO scoops (
			id, edition_id, source_url, title, variants, topic_tags, sentiment,
			latitude, longitude, location_name, country_code, editorial_remark,
			audience_reaction, publish_date, published_at, ingesting_actor, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (source_url) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		scoop.ID, scoop.EditionID, scoop.SourceURL, scoop.Title,
		variants, tags, scoop.Sentiment,
		scoop.Latitude, scoop.Longitude, scoop.LocationName, scoop.CountryCode,
		scoop.EditorialRemark, reactions,
		scoop.PublishDate, scoop.PublishedAt, scoop.IngestingActor, scoop.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create scoop", "source_url", scoop.SourceURL, "error", err)
		return fmt.Errorf("failed to create scoop: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateScoop
	}

	r.logger.InfoContext(ctx, "scoop created", "scoop_id", scoop.ID, "source_url", scoop.SourceURL)

	return nil
}

// ExistsBySourceURL checks whether a scoop exists for the given source URL.
func (r *scoopRepository) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	if r.db == nil {
		return false, fmt.Errorf("failed to check scoop existence: database connection is nil")
	}

	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM scoops WHERE source_url = $1)`, sourceURL).Scan(&exists)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to check scoop existence", "source_url", sourceURL, "error", err)
		return false, fmt.Errorf("failed to check scoop existence: %w", err)
	}

	return exists, nil
}

// ListSourceURLs accumulates every stored source URL through paged reads.
// The result is the dedup gate's snapshot of the store at run start.
func (r *scoopRepository) ListSourceURLs(ctx context.Context) (map[string]struct{}, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to list source URLs: database connection is nil")
	}

	urls := make(map[string]struct{})

	for offset := 0; ; offset += sourceURLPageSize {
		query := `
			SELECT source_url FROM scoops
			ORDER BY created_at, id
			LIMIT $1 OFFSET $2
		`

		rows, err := r.db.Query(ctx, query, sourceURLPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list source URLs: %w", err)
		}

		pageCount := 0

		for rows.Next() {
			var sourceURL string
			if err := rows.Scan(&sourceURL); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan source URL: %w", err)
			}

			urls[sourceURL] = struct{}{}
			pageCount++
		}

		rows.Close()

		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read source URL page: %w", err)
		}

		if pageCount < sourceURLPageSize {
			break
		}
	}

	r.logger.DebugContext(ctx, "listed stored source URLs", "count", len(urls))

	return urls, nil
}
