// Package store holds the in-memory collections backing the API. Each store
// owns one RWMutex; collections are append-or-accumulate only and live for
// the lifetime of the process.
package store

import (
	"sync"
	"time"
)

// MoodRecord is one entry in the mood history. Plain mood logs carry a mood
// and optional notes; burnout assessments additionally carry the score and
// status. Records are immutable once appended.
type MoodRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Mood         string    `json:"mood"`
	Notes        string    `json:"notes,omitempty"`
	BurnoutScore *float64  `json:"burnout_score,omitempty"`
	Status       string    `json:"status,omitempty"`
}

// MoodStore is an append-only in-memory mood history.
type MoodStore struct {
	mu      sync.RWMutex
	records []MoodRecord
}

// NewMoodStore creates an empty mood history.
func NewMoodStore() *MoodStore {
	return &MoodStore{
		records: make([]MoodRecord, 0),
	}
}

// Append adds a record to the history.
func (s *MoodStore) Append(rec MoodRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Tail returns the most recently appended limit records in insertion order.
func (s *MoodStore) Tail(limit int) []MoodRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.records) - limit
	if start < 0 {
		start = 0
	}

	out := make([]MoodRecord, len(s.records)-start)
	copy(out, s.records[start:])
	return out
}

// Len returns the number of records in the history.
func (s *MoodStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
