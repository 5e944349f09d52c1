package domain

import "time"

// RawFeedItem is one entry harvested from a syndication feed. Ephemeral:
// produced by the feed fetcher, consumed by the rest of the run.
// Link is the canonical dedup key and is non-empty for any item that passes
// the deduplication gate.
type RawFeedItem struct {
	Title          string
	Link           string
	Summary        string
	PublishedAt    time.Time
	SourceFeedName string
}

// CandidateArticle is a feed item plus recovered content, alive only while
// one item is being processed.
type CandidateArticle struct {
	SimplifiedTitle string
	BodyText        string
	PublishedAt     time.Time
}
