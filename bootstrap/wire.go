// ABOUTME: Dependency wiring: construct drivers, repositories, services, and
// ABOUTME: the pipeline from configuration in dependency order
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"scoop-harvester/config"
	"scoop-harvester/driver"
	"scoop-harvester/handler"
	"scoop-harvester/metrics"
	"scoop-harvester/orchestrator"
	"scoop-harvester/repository"
	"scoop-harvester/service"
)

// Dependencies holds every constructed component.
type Dependencies struct {
	Config    *config.Config
	Logger    *slog.Logger
	DBPool    *pgxpool.Pool
	Progress  *driver.ProgressPublisher
	Pipeline  *orchestrator.Pipeline
	Collector *metrics.Collector
	Status    *handler.RunStatusStore
	Health    *handler.HealthHandler
	StatusAPI *handler.StatusHandler
}

// BuildDependencies wires the full object graph, leaves first.
func BuildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	dbPool, err := driver.InitPool(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	completionClient := driver.NewCompletionClient(&cfg.Completion, logger)
	geocoderClient := driver.NewGeocoderClient(&cfg.Geocoder, cfg.HTTP.UserAgent, logger)
	progressPublisher := driver.NewProgressPublisher(&cfg.Redis, logger)

	scoopRepo := repository.NewScoopRepository(dbPool, logger)
	editionRepo := repository.NewEditionRepository(dbPool, logger)

	generator := service.NewVariantGeneratorService(completionClient, logger)

	collector := metrics.NewCollector()

	pipeline := orchestrator.NewPipeline(orchestrator.PipelineDeps{
		Feeds:     service.NewFeedFetcherService(cfg.Feeds.Sources, &cfg.HTTP, logger),
		Dedup:     service.NewDeduplicationService(logger),
		FullText:  service.NewFullTextService(&cfg.Pipeline, &cfg.HTTP, logger),
		Generator: generator,
		Resolver:  service.NewLocationResolverService(geocoderClient, generator, logger),
		Writer:    service.NewRecordWriterService(scoopRepo, logger),
		Editions:  editionRepo,
		Scoops:    scoopRepo,
		Progress:  progressPublisher,
		Collector: collector,
		Config:    cfg,
		Logger:    logger,
	})

	statusStore := handler.NewRunStatusStore()

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		DBPool:    dbPool,
		Progress:  progressPublisher,
		Pipeline:  pipeline,
		Collector: collector,
		Status:    statusStore,
		Health:    handler.NewHealthHandler(dbPool, completionClient, logger),
		StatusAPI: handler.NewStatusHandler(statusStore, collector),
	}, nil
}

// Close releases held resources.
func (d *Dependencies) Close() {
	if d.Progress != nil {
		if err := d.Progress.Close(); err != nil {
			d.Logger.Warn("failed to close progress publisher", "error", err)
		}
	}

	if d.DBPool != nil {
		d.DBPool.Close()
	}
}
