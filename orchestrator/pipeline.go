// ABOUTME: The ingestion pipeline: window selection, feed fetch, dedup, and
// ABOUTME: the per-article state machine through to race-safe persistence
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"scoop-harvester/config"
	"scoop-harvester/domain"
	"scoop-harvester/driver"
	"scoop-harvester/metrics"
	"scoop-harvester/models"
	"scoop-harvester/repository"
	"scoop-harvester/service"
)

// headlineWordLimit is the ceiling requested when simplifying titles.
const headlineWordLimit = 12

// ProgressFunc receives human-readable status lines after each milestone and
// each processed article. Purely observational; never affects control flow.
type ProgressFunc func(message string)

// Pipeline sequences one ingestion run end to end.
type Pipeline struct {
	feeds     service.FeedFetcherService
	dedup     service.DeduplicationService
	fulltext  service.FullTextService
	generator service.VariantGeneratorService
	resolver  service.LocationResolverService
	writer    service.RecordWriterService
	editions  repository.EditionRepository
	scoops    repository.ScoopRepository
	progress  *driver.ProgressPublisher
	collector *metrics.Collector
	cfg       *config.Config
	logger    *slog.Logger
}

// PipelineDeps wires the pipeline's collaborators.
type PipelineDeps struct {
	Feeds     service.FeedFetcherService
	Dedup     service.DeduplicationService
	FullText  service.FullTextService
	Generator service.VariantGeneratorService
	Resolver  service.LocationResolverService
	Writer    service.RecordWriterService
	Editions  repository.EditionRepository
	Scoops    repository.ScoopRepository
	Progress  *driver.ProgressPublisher
	Collector *metrics.Collector
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		feeds:     deps.Feeds,
		dedup:     deps.Dedup,
		fulltext:  deps.FullText,
		generator: deps.Generator,
		resolver:  deps.Resolver,
		writer:    deps.Writer,
		editions:  deps.Editions,
		scoops:    deps.Scoops,
		progress:  deps.Progress,
		collector: deps.Collector,
		cfg:       deps.Config,
		logger:    deps.Logger,
	}
}

// Run executes one ingestion run and returns its summary. Per-article
// failures are isolated; only feed-level or edition-level failures abort.
func (p *Pipeline) Run(ctx context.Context, progress ProgressFunc) (*models.RunSummary, error) {
	runID := uuid.NewString()
	startedAt := time.Now()

	summary := &models.RunSummary{
		Status:    models.RunStatusCompleted,
		StartedAt: startedAt,
	}

	report := func(phase, message string) {
		p.logger.InfoContext(ctx, message, "run_id", runID, "phase", phase)
		p.progress.Publish(ctx, runID, phase, message)
		if progress != nil {
			progress(message)
		}
	}

	finish := func() *models.RunSummary {
		summary.FinishedAt = time.Now()
		summary.Aggregate()
		p.collector.ObserveRun(summary)

		return summary
	}

	abort := func(phase string, err error) (*models.RunSummary, error) {
		summary.Status = models.RunStatusAborted
		report(phase, fmt.Sprintf("run aborted: %v", err))

		return finish(), err
	}

	window := domain.ComputeIngestionWindow(time.Now())
	report("window_computed", fmt.Sprintf("ingestion window %s to %s",
		window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339)))

	edition, err := p.editions.GetOrCreateForDate(ctx, window.EditionDate())
	if err != nil {
		return abort("edition", fmt.Errorf("%w: %v", domain.ErrEditionUnavailable, err))
	}

	summary.EditionID = edition.ID

	items, err := p.feeds.FetchWindow(ctx, window)
	if err != nil {
		return abort("feeds_fetched", err)
	}

	report("feeds_fetched", fmt.Sprintf("%d entries in window across feeds", len(items)))

	existingLinks, err := p.scoops.ListSourceURLs(ctx)
	if err != nil {
		return abort("deduplicated", fmt.Errorf("failed to snapshot stored links: %w", err))
	}

	fresh := p.dedup.FilterNew(items, existingLinks)
	summary.SkippedAlreadyStoredCount = len(items) - len(fresh)

	report("deduplicated", fmt.Sprintf("%d new articles after dedup (%d skipped)",
		len(fresh), summary.SkippedAlreadyStoredCount))

	if len(fresh) == 0 {
		report("summarized", "no new articles, nothing to do")
		return finish(), nil
	}

	if limit := p.cfg.MaxArticlesPerRun(); limit > 0 && len(fresh) > limit {
		p.logger.InfoContext(ctx, "capping articles for this run", "limit", limit, "candidates", len(fresh))
		fresh = fresh[:limit]
	}

	results := runBounded(ctx, p.cfg.Pipeline.Concurrency, fresh,
		func(ctx context.Context, item *domain.RawFeedItem) (models.ArticleTiming, error) {
			timing := p.processArticle(ctx, edition, item)
			report("article", fmt.Sprintf("[%s] %s (%s)", timing.Status, timing.Title,
				timing.Duration.Round(time.Millisecond)))

			return timing, nil
		})

	for _, result := range results {
		if result.err != nil {
			// Only cancellation reaches here; per-article failures are folded
			// into the timing record's status.
			summary.Articles = append(summary.Articles, models.ArticleTiming{
				Title:  fresh[result.index].Title,
				Status: models.ArticleStatusError,
			})

			continue
		}

		timing := result.value
		summary.Articles = append(summary.Articles, timing)

		switch timing.Status {
		case models.ArticleStatusCreated:
			summary.ProcessedCount++
		case models.ArticleStatusSkipped:
			summary.SkippedAlreadyStoredCount++
		}
	}

	report("summarized", fmt.Sprintf("run complete: %d created, %d skipped, %d candidates",
		summary.ProcessedCount, summary.SkippedAlreadyStoredCount, len(items)))

	return finish(), nil
}

// processArticle walks one item through the per-article states: extracting,
// simplifying, generating, resolving, persisting. Each stage has one success
// path and one fallback path; a failure in persistence marks the article as
// errored without touching the rest of the run.
func (p *Pipeline) processArticle(ctx context.Context, edition *models.Edition, item *domain.RawFeedItem) models.ArticleTiming {
	timing := models.ArticleTiming{Title: item.Title}
	articleStart := time.Now()

	defer func() {
		timing.Duration = time.Since(articleStart)
	}()

	// Extracting
	stepStart := time.Now()
	fullText := p.fulltext.Extract(ctx, item.Link)
	body := p.fulltext.BuildBody(fullText, item.Summary)
	timing.Steps.Extraction = time.Since(stepStart)

	// Simplifying
	stepStart = time.Now()
	title := p.generator.Simplify(ctx, item.Title, headlineWordLimit)
	if body != "" && domain.WordCount(body) <= service.ShortBodyWordLimit {
		// Long extracted text goes to the generator largely as-is to preserve
		// detail; short bodies benefit from a cleanup pass.
		body = p.generator.Simplify(ctx, body, 0)
	}
	timing.Steps.Simplification = time.Since(stepStart)

	article := &domain.CandidateArticle{
		SimplifiedTitle: title,
		BodyText:        body,
		PublishedAt:     item.PublishedAt,
	}

	// Generating
	stepStart = time.Now()
	generated := p.generator.GenerateVariants(ctx, article.SimplifiedTitle, article.BodyText)
	timing.Steps.Generation = time.Since(stepStart)

	if generated.Status == service.GenerationDegraded {
		p.logger.WarnContext(ctx, "using degraded variant set", "title", item.Title)
	}

	// Resolving
	stepStart = time.Now()
	location := p.resolver.Resolve(ctx, generated.Set.PlaceName, article.SimplifiedTitle, article.BodyText)
	timing.Steps.LocationResolution = time.Since(stepStart)

	scoop := &models.ScoopRecord{
		EditionID:        edition.ID,
		SourceURL:        item.Link,
		Title:            article.SimplifiedTitle,
		Variants:         generated.Set.Variants,
		TopicTags:        generated.Set.TopicTags,
		Sentiment:        generated.Set.Sentiment,
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		LocationName:     location.DisplayName,
		CountryCode:      generated.Set.CountryCode,
		EditorialRemark:  generated.Set.EditorialRemark,
		AudienceReaction: generated.Set.AudienceReaction,
		PublishDate:      edition.Date,
		PublishedAt:      item.PublishedAt,
		IngestingActor:   p.cfg.Pipeline.IngestingActor,
	}

	// Persisting (recheck + insert timed by the writer)
	writeResult, err := p.writer.WriteIfAbsent(ctx, scoop)
	timing.Steps.DuplicateRecheck = writeResult.RecheckDuration
	timing.Steps.Persistence = writeResult.PersistDuration

	if err != nil {
		p.logger.ErrorContext(ctx, "failed to persist article, continuing run",
			"source_url", item.Link, "error", err)

		timing.Status = models.ArticleStatusError

		return timing
	}

	if writeResult.Status == service.WriteSkipped {
		timing.Status = models.ArticleStatusSkipped
	} else {
		timing.Status = models.ArticleStatusCreated
	}

	return timing
}
