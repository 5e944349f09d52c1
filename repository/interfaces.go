package repository

import (
	"context"
	"time"

	"scoop-harvester/models"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// ScoopRepository handles scoop record persistence.
type ScoopRepository interface {
	// Create inserts the record. Returns domain.ErrDuplicateScoop when a
	// record for the same source URL already exists; the store's uniqueness
	// check is the hard half of the dedup contract.
	Create(ctx context.Context, scoop *models.ScoopRecord) error

	// ExistsBySourceURL is the pre-insert recheck for the soft/hard dedup pair.
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)

	// ListSourceURLs returns the full set of stored source URLs, accumulated
	// through paged reads.
	ListSourceURLs(ctx context.Context) (map[string]struct{}, error)
}

// EditionRepository handles daily edition batch records.
type EditionRepository interface {
	GetOrCreateForDate(ctx context.Context, date time.Time) (*models.Edition, error)
}
