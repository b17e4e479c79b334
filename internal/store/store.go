// Package store holds the latest analysis result for the running session.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-analyzer-desktop/internal/models"
)

// Entry is one received analysis, kept for the session history.
type Entry struct {
	ID         string
	Result     models.AnalysisResult
	ReceivedAt time.Time
}

// ResultStore is a single mutable slot for the most recent analysis result,
// plus the in-session history of everything received. Nothing survives past
// the process.
type ResultStore struct {
	mu      sync.RWMutex
	current *models.AnalysisResult
	history []Entry
	now     func() time.Time
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{now: time.Now}
}

// Set replaces the current result wholesale and records a history entry.
func (s *ResultStore) Set(result models.AnalysisResult) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &result
	entry := Entry{
		ID:         uuid.NewString(),
		Result:     result,
		ReceivedAt: s.now(),
	}
	s.history = append(s.history, entry)
	return entry
}

// Get returns the current result, or the all-default result when nothing has
// been received yet. Consumers never need to null-check.
func (s *ResultStore) Get() models.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.DefaultAnalysisResult()
	}
	return *s.current
}

// HasResult reports whether a result has been received this session.
func (s *ResultStore) HasResult() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// History returns all received analyses, newest first.
func (s *ResultStore) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.history))
	for i, entry := range s.history {
		entries[len(s.history)-1-i] = entry
	}
	return entries
}
