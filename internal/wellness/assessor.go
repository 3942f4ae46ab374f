// Package wellness computes burnout risk from daily workload signals.
package wellness

import (
	"time"

	"github.com/uvishwakchander/NeuroX2/internal/store"
	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
)

// RiskLevel classifies a burnout score into three bands.
type RiskLevel int

const (
	RiskBalanced RiskLevel = iota
	RiskModerate
	RiskHigh
)

// String returns the plain classification tag, free of any display glyphs.
func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "High"
	case RiskModerate:
		return "Moderate"
	default:
		return "Balanced"
	}
}

// Assessment is one burnout evaluation. Score is the unrounded internal
// value; rounding happens only at the response boundary.
type Assessment struct {
	Timestamp time.Time
	Mood      string
	Score     float64
	Level     RiskLevel
}

// Assessor turns workload signals into a burnout classification and records
// every assessment in the mood history.
type Assessor struct {
	history *store.MoodStore
	now     func() time.Time
}

// NewAssessor creates an assessor recording into history.
func NewAssessor(history *store.MoodStore) *Assessor {
	return &Assessor{
		history: history,
		now:     timeutil.Now,
	}
}

// Score computes the workload-pressure metric. Break frequency divides the
// hours worked (the +1 keeps the denominator non-zero) and completed tasks
// offset the result linearly. There is no floor: enough tasks or breaks can
// drive the score arbitrarily negative, which still classifies as Balanced.
func Score(hoursWorked, tasksDone, breaksTaken int) float64 {
	return float64(hoursWorked)/float64(breaksTaken+1) - float64(tasksDone)*0.5
}

// Classify maps a score to its risk level. Thresholds are inclusive lower
// bounds: >=6 is High, >=3 is Moderate, everything below is Balanced.
func Classify(score float64) RiskLevel {
	switch {
	case score >= 6:
		return RiskHigh
	case score >= 3:
		return RiskModerate
	default:
		return RiskBalanced
	}
}

// Assess evaluates one set of workload signals and appends the result to the
// mood history. Inputs must already be validated non-negative at the
// boundary; the append happens unconditionally once this is called.
func (a *Assessor) Assess(hoursWorked, tasksDone, breaksTaken int, mood string) Assessment {
	score := Score(hoursWorked, tasksDone, breaksTaken)
	assessment := Assessment{
		Timestamp: a.now(),
		Mood:      mood,
		Score:     score,
		Level:     Classify(score),
	}

	recorded := score
	a.history.Append(store.MoodRecord{
		Timestamp:    assessment.Timestamp,
		Mood:         assessment.Mood,
		BurnoutScore: &recorded,
		Status:       assessment.Level.String(),
	})

	return assessment
}
