package service

import (
	"log/slog"

	"scoop-harvester/domain"
)

// deduplicationService implementation.
type deduplicationService struct {
	logger *slog.Logger
}

// NewDeduplicationService creates the soft dedup gate.
func NewDeduplicationService(logger *slog.Logger) DeduplicationService {
	return &deduplicationService{logger: logger}
}

// FilterNew discards items with an empty link, items whose link is already
// stored, and items whose link appeared earlier in the same candidate list
// (the same story syndicated through two feeds). This gate only reflects the
// store as of run start; a concurrent run can still pass the same item
// through, which the writer's recheck closes off.
func (s *deduplicationService) FilterNew(items []*domain.RawFeedItem, existingLinks map[string]struct{}) []*domain.RawFeedItem {
	seenThisRun := make(map[string]struct{}, len(items))
	fresh := make([]*domain.RawFeedItem, 0, len(items))

	for _, item := range items {
		if item.Link == "" {
			s.logger.Debug("dropping item with empty link", "title", item.Title)
			continue
		}

		if _, stored := existingLinks[item.Link]; stored {
			continue
		}

		if _, seen := seenThisRun[item.Link]; seen {
			s.logger.Debug("dropping duplicate link within run", "link", item.Link)
			continue
		}

		seenThisRun[item.Link] = struct{}{}
		fresh = append(fresh, item)
	}

	s.logger.Info("deduplication gate applied",
		"candidates", len(items), "fresh", len(fresh))

	return fresh
}
