// ABOUTME: In-process run metrics: per-stage timing aggregates and outcome
// ABOUTME: counters exposed through the status endpoint
package metrics

import (
	"sync"
	"time"

	"scoop-harvester/models"
)

// StageStats aggregates one pipeline stage's wall-clock durations.
type StageStats struct {
	Count   int64         `json:"count"`
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
}

// Snapshot is a point-in-time view of the collector.
type Snapshot struct {
	RunsCompleted int64                 `json:"runs_completed"`
	RunsAborted   int64                 `json:"runs_aborted"`
	Created       int64                 `json:"scoops_created"`
	Skipped       int64                 `json:"scoops_skipped"`
	Errored       int64                 `json:"scoops_errored"`
	Stages        map[string]StageStats `json:"stages"`
	LastRunAt     time.Time             `json:"last_run_at"`
}

// Collector accumulates pipeline metrics across runs. Safe for concurrent
// use; a nil collector drops every observation.
type Collector struct {
	mu       sync.Mutex
	snapshot Snapshot
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{snapshot: Snapshot{Stages: map[string]StageStats{}}}
}

// ObserveRun folds one run summary into the aggregates.
func (c *Collector) ObserveRun(summary *models.RunSummary) {
	if c == nil || summary == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if summary.Status == models.RunStatusAborted {
		c.snapshot.RunsAborted++
	} else {
		c.snapshot.RunsCompleted++
	}

	c.snapshot.LastRunAt = summary.FinishedAt

	for _, article := range summary.Articles {
		switch article.Status {
		case models.ArticleStatusCreated:
			c.snapshot.Created++
		case models.ArticleStatusSkipped:
			c.snapshot.Skipped++
		case models.ArticleStatusError:
			c.snapshot.Errored++
		}

		c.observeStage("extraction", article.Steps.Extraction)
		c.observeStage("simplification", article.Steps.Simplification)
		c.observeStage("generation", article.Steps.Generation)
		c.observeStage("location_resolution", article.Steps.LocationResolution)
		c.observeStage("duplicate_recheck", article.Steps.DuplicateRecheck)
		c.observeStage("persistence", article.Steps.Persistence)
	}
}

func (c *Collector) observeStage(name string, d time.Duration) {
	stats := c.snapshot.Stages[name]

	if stats.Count == 0 || d < stats.Min {
		stats.Min = d
	}
	if d > stats.Max {
		stats.Max = d
	}

	stats.Count++
	stats.Total += d
	stats.Average = stats.Total / time.Duration(stats.Count)

	c.snapshot.Stages[name] = stats
}

// Snapshot returns a copy of the current aggregates.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.snapshot
	out.Stages = make(map[string]StageStats, len(c.snapshot.Stages))
	for name, stats := range c.snapshot.Stages {
		out.Stages[name] = stats
	}

	return out
}
