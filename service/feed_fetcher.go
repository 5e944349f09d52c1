package service

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

// feedFetcherService implementation.
type feedFetcherService struct {
	sources []config.FeedSource
	parser  *gofeed.Parser
	logger  *slog.Logger
}

// NewFeedFetcherService creates a new feed fetcher service.
func NewFeedFetcherService(sources []config.FeedSource, httpCfg *config.HTTPConfig, logger *slog.Logger) FeedFetcherService {
	parser := gofeed.NewParser()
	parser.UserAgent = httpCfg.UserAgent
	parser.Client = &http.Client{Timeout: httpCfg.Timeout}

	return &feedFetcherService{
		sources: sources,
		parser:  parser,
		logger:  logger,
	}
}

// FetchWindow fetches every configured feed and returns the union of entries
// whose publish timestamp falls inside the window, newest first. A feed that
// fails is skipped with a warning; when all feeds fail the run cannot
// proceed and ErrAllFeedsUnavailable is returned.
func (s *feedFetcherService) FetchWindow(ctx context.Context, window domain.IngestionWindow) ([]*domain.RawFeedItem, error) {
	var items []*domain.RawFeedItem

	failedFeeds := 0

	for _, source := range s.sources {
		feed, err := s.parser.ParseURLWithContext(source.URL, ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "feed fetch failed, skipping",
				"feed", source.Name, "url", source.URL, "error", err)

			failedFeeds++

			continue
		}

		kept := 0

		for _, entry := range feed.Items {
			publishedAt, err := entryTimestamp(entry)
			if err != nil {
				// Without a timestamp the entry cannot be placed in the window.
				s.logger.DebugContext(ctx, "dropping entry without determinable timestamp",
					"feed", source.Name, "title", entry.Title)

				continue
			}

			if !window.Contains(publishedAt) {
				continue
			}

			items = append(items, &domain.RawFeedItem{
				Title:          entry.Title,
				Link:           entry.Link,
				Summary:        entry.Description,
				PublishedAt:    publishedAt,
				SourceFeedName: source.Name,
			})
			kept++
		}

		s.logger.InfoContext(ctx, "feed fetched",
			"feed", source.Name, "entries", len(feed.Items), "in_window", kept)
	}

	if len(s.sources) > 0 && failedFeeds == len(s.sources) {
		return nil, domain.ErrAllFeedsUnavailable
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	return items, nil
}

// entryTimestamp determines an entry's publication time: the structured
// publish timestamp when the feed provides one, then the structured update
// timestamp, then a best-effort free-text parse of the published string.
func entryTimestamp(entry *gofeed.Item) (time.Time, error) {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed, nil
	}

	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed, nil
	}

	if entry.Published != "" {
		if parsed, err := dateparse.ParseAny(entry.Published); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, domain.ErrNoPublishTimestamp
}
