package models

import "time"

// Run and per-article statuses reported in a RunSummary.
const (
	RunStatusCompleted = "completed"
	RunStatusAborted   = "aborted"

	ArticleStatusCreated = "created"
	ArticleStatusSkipped = "skipped"
	ArticleStatusError   = "error"
)

// StepTimings holds the wall-clock duration of each pipeline stage for one
// article.
type StepTimings struct {
	Extraction         time.Duration `json:"extraction"`
	Simplification     time.Duration `json:"simplification"`
	Generation         time.Duration `json:"generation"`
	LocationResolution time.Duration `json:"location_resolution"`
	DuplicateRecheck   time.Duration `json:"duplicate_recheck"`
	Persistence        time.Duration `json:"persistence"`
}

// ArticleTiming is the per-article entry of a RunSummary.
type ArticleTiming struct {
	Title    string        `json:"title"`
	Duration time.Duration `json:"duration"`
	Status   string        `json:"status"`
	Steps    StepTimings   `json:"steps"`
}

// AggregateTiming summarizes article durations across one run.
type AggregateTiming struct {
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
}

// RunSummary is the ephemeral result of one orchestrated pipeline execution,
// returned to the caller and exposed on the status endpoint.
type RunSummary struct {
	Status                    string          `json:"status"`
	EditionID                 string          `json:"edition_id"`
	ProcessedCount            int             `json:"processed_count"`
	SkippedAlreadyStoredCount int             `json:"skipped_already_stored_count"`
	Articles                  []ArticleTiming `json:"articles"`
	Timing                    AggregateTiming `json:"timing"`
	StartedAt                 time.Time       `json:"started_at"`
	FinishedAt                time.Time       `json:"finished_at"`
}

// Aggregate recomputes the run-level timing block from the per-article list.
func (s *RunSummary) Aggregate() {
	if len(s.Articles) == 0 {
		s.Timing = AggregateTiming{}
		return
	}

	agg := AggregateTiming{Min: s.Articles[0].Duration, Max: s.Articles[0].Duration}
	for _, a := range s.Articles {
		agg.Total += a.Duration
		if a.Duration < agg.Min {
			agg.Min = a.Duration
		}
		if a.Duration > agg.Max {
			agg.Max = a.Duration
		}
	}
	agg.Average = agg.Total / time.Duration(len(s.Articles))

	s.Timing = agg
}
