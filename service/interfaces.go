package service

import (
	"context"
	"time"

	"scoop-harvester/domain"
	"scoop-harvester/driver"
	"scoop-harvester/models"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// CompletionService is the text-completion collaborator: free-form text in,
// free-form text out, no structural guarantee on the reply.
type CompletionService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Geocoder is the live geocoding collaborator.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*driver.GeocodedPlace, error)
}

// FeedFetcherService retrieves and parses the configured feeds, keeping only
// entries inside the ingestion window.
type FeedFetcherService interface {
	FetchWindow(ctx context.Context, window domain.IngestionWindow) ([]*domain.RawFeedItem, error)
}

// DeduplicationService is the soft half of the dedup contract: it filters
// against a snapshot of stored links taken at run start plus links already
// seen earlier in the same candidate list. The hard half is the record
// writer's recheck-before-insert.
type DeduplicationService interface {
	FilterNew(items []*domain.RawFeedItem, existingLinks map[string]struct{}) []*domain.RawFeedItem
}

// FullTextService recovers article body text, best effort.
type FullTextService interface {
	// Extract fetches and extracts the main body text for a URL. Never
	// returns an error: any failure yields an empty string.
	Extract(ctx context.Context, articleURL string) string

	// BuildBody chooses the transformation input: truncated full text when
	// extraction succeeded, sanitized feed summary otherwise.
	BuildBody(fullText, feedSummary string) string
}

// GenerationStatus tags how a variant set was produced.
type GenerationStatus string

const (
	// GenerationParsed means the completion reply yielded a structured result.
	GenerationParsed GenerationStatus = "parsed"
	// GenerationDegraded means generation failed and the set was built from
	// the untransformed article text.
	GenerationDegraded GenerationStatus = "degraded"
)

// GenerationResult is the tagged outcome of one variant-generation call.
// The set is always usable; Status records whether it is degraded.
type GenerationResult struct {
	Set    *domain.VariantSet
	Status GenerationStatus
}

// VariantGeneratorService drives the completion service and defends against
// its unstructured output.
type VariantGeneratorService interface {
	GenerateVariants(ctx context.Context, title, body string) GenerationResult
	Simplify(ctx context.Context, text string, maxWords int) string
	ExtractPlace(ctx context.Context, title, body string) string
	ExtractCountry(ctx context.Context, title, body string) string
}

// LocationResolverService resolves a place name to coordinates through the
// ordered fallback chain.
type LocationResolverService interface {
	Resolve(ctx context.Context, placeName, title, body string) domain.ResolvedLocation
}

// WriteStatus is the outcome of a conditional write.
type WriteStatus string

const (
	WriteCreated WriteStatus = "created"
	WriteSkipped WriteStatus = "skipped"
)

// WriteResult carries the write outcome plus the wall-clock duration of the
// two persistence-side steps, for per-article timing telemetry.
type WriteResult struct {
	Status          WriteStatus
	RecheckDuration time.Duration
	PersistDuration time.Duration
}

// RecordWriterService persists scoops with a race-safe duplicate recheck.
type RecordWriterService interface {
	WriteIfAbsent(ctx context.Context, scoop *models.ScoopRecord) (WriteResult, error)
}
