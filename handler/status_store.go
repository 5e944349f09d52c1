package handler

import (
	"sync"

	"scoop-harvester/models"
)

// RunStatusStore keeps the most recent run summary for the status endpoint.
// Safe for concurrent use.
type RunStatusStore struct {
	mu   sync.RWMutex
	last *models.RunSummary
}

// NewRunStatusStore creates an empty store.
func NewRunStatusStore() *RunStatusStore {
	return &RunStatusStore{}
}

// Set replaces the stored summary.
func (s *RunStatusStore) Set(summary *models.RunSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = summary
}

// Get returns the stored summary, or nil before the first run.
func (s *RunStatusStore) Get() *models.RunSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}
