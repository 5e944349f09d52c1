package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"scoop-harvester/domain"
	"scoop-harvester/models"
	"scoop-harvester/repository"
)

// recordWriterService implementation.
type recordWriterService struct {
	scoopRepo repository.ScoopRepository
	logger    *slog.Logger
}

// NewRecordWriterService creates a new record writer service.
func NewRecordWriterService(scoopRepo repository.ScoopRepository, logger *slog.Logger) RecordWriterService {
	return &recordWriterService{
		scoopRepo: scoopRepo,
		logger:    logger,
	}
}

// WriteIfAbsent persists the scoop unless a record for its source URL
// already exists. The store is re-queried immediately before the insert:
// the run-local seen-set cannot observe other processes, so this recheck is
// what closes the race window the soft dedup gate leaves open. A duplicate
// surfacing from the store's own uniqueness check is the same outcome
// reached one step later, not an error.
func (s *recordWriterService) WriteIfAbsent(ctx context.Context, scoop *models.ScoopRecord) (WriteResult, error) {
	result := WriteResult{}

	recheckStart := time.Now()
	exists, err := s.scoopRepo.ExistsBySourceURL(ctx, scoop.SourceURL)
	result.RecheckDuration = time.Since(recheckStart)

	if err != nil {
		return result, fmt.Errorf("duplicate recheck failed: %w", err)
	}

	if exists {
		s.logger.InfoContext(ctx, "scoop already stored, skipping", "source_url", scoop.SourceURL)
		result.Status = WriteSkipped

		return result, nil
	}

	persistStart := time.Now()
	err = s.scoopRepo.Create(ctx, scoop)
	result.PersistDuration = time.Since(persistStart)

	if err != nil {
		if errors.Is(err, domain.ErrDuplicateScoop) {
			s.logger.InfoContext(ctx, "concurrent insert won the race, skipping",
				"source_url", scoop.SourceURL)

			result.Status = WriteSkipped

			return result, nil
		}

		return result, fmt.Errorf("failed to persist scoop: %w", err)
	}

	result.Status = WriteCreated

	return result, nil
}
