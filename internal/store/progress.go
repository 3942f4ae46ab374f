package store

import (
	"sync"
	"time"
)

// ProgressEntry is one progress submission for a user.
type ProgressEntry struct {
	Timestamp time.Time `json:"timestamp"`
	XP        int       `json:"xp"`
	Tasks     int       `json:"tasks"`
	Streak    int       `json:"streak"`
}

// UserProgress is the accumulated progress for one user. TotalXP and
// TotalTasks only grow; MaxStreak is the running maximum of every streak
// ever submitted.
type UserProgress struct {
	UserID     string          `json:"user_id"`
	TotalXP    int             `json:"total_xp"`
	TotalTasks int             `json:"total_tasks"`
	MaxStreak  int             `json:"max_streak"`
	Entries    []ProgressEntry `json:"entries"`
}

// ProgressStore is an accumulate-only in-memory progress map keyed by user.
type ProgressStore struct {
	mu    sync.RWMutex
	users map[string]*UserProgress
}

// NewProgressStore creates an empty progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		users: make(map[string]*UserProgress),
	}
}

// Record accumulates one progress submission, creating the user record on
// first sight, and returns a snapshot of the updated record. The whole
// read-modify-write runs under the write lock so concurrent submissions
// never lose updates.
func (s *ProgressStore) Record(userID string, xp, tasks, streak int, timestamp time.Time) UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		user = &UserProgress{
			UserID:  userID,
			Entries: make([]ProgressEntry, 0),
		}
		s.users[userID] = user
	}

	user.TotalXP += xp
	user.TotalTasks += tasks
	if streak > user.MaxStreak {
		user.MaxStreak = streak
	}
	user.Entries = append(user.Entries, ProgressEntry{
		Timestamp: timestamp,
		XP:        xp,
		Tasks:     tasks,
		Streak:    streak,
	})

	return snapshotProgress(user)
}

// Get returns a snapshot of a user's progress. Unknown users get a
// zero-valued record, never an error.
func (s *ProgressStore) Get(userID string) UserProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return UserProgress{
			UserID:  userID,
			Entries: make([]ProgressEntry, 0),
		}
	}
	return snapshotProgress(user)
}

// Totals returns the user count and the XP/task sums across all users.
func (s *ProgressStore) Totals() (users, totalXP, totalTasks int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		totalXP += user.TotalXP
		totalTasks += user.TotalTasks
	}
	return len(s.users), totalXP, totalTasks
}

func snapshotProgress(user *UserProgress) UserProgress {
	out := *user
	out.Entries = make([]ProgressEntry, len(user.Entries))
	copy(out.Entries, user.Entries)
	return out
}
