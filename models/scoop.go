package models

import "time"

// ScoopRecord is the persisted unit: one ingested news item with its three
// rewritten variants and derived metadata. Created exactly once per distinct
// source URL and never mutated by the pipeline afterwards.
type ScoopRecord struct {
	ID               string
	EditionID        string
	SourceURL        string
	Title            string
	Variants         map[string]string
	TopicTags        []string
	Sentiment        string
	Latitude         *float64
	Longitude        *float64
	LocationName     string
	CountryCode      string
	EditorialRemark  string
	AudienceReaction map[string]map[string]int
	PublishDate      time.Time
	PublishedAt      time.Time
	IngestingActor   string
	CreatedAt        time.Time
}
