package http

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/store"
	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
	"github.com/uvishwakchander/NeuroX2/internal/wellness"
)

type burnoutRequest struct {
	HoursWorked int    `json:"hours_worked"`
	TasksDone   int    `json:"tasks_done"`
	BreaksTaken int    `json:"breaks_taken"`
	Mood        string `json:"mood"`
}

// HandleBurnout assesses burnout risk from the day's workload signals.
// Validation happens strictly before Assess: once the assessor runs, the
// result is recorded in the mood history unconditionally.
func (a *API) HandleBurnout(c *gin.Context) {
	var req burnoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.HoursWorked < 0 {
		badRequest(c, "hours_worked must be non-negative")
		return
	}
	if req.TasksDone < 0 {
		badRequest(c, "tasks_done must be non-negative")
		return
	}
	if req.BreaksTaken < 0 {
		badRequest(c, "breaks_taken must be non-negative")
		return
	}
	mood := req.Mood
	if mood == "" {
		mood = "neutral"
	}

	assessment := a.assessor.Assess(req.HoursWorked, req.TasksDone, req.BreaksTaken, mood)

	c.JSON(http.StatusOK, gin.H{
		"status":        wellness.DisplayLabel(assessment.Level),
		"burnout_score": roundScore(assessment.Score),
		"suggestion":    wellness.Suggestion(assessment.Level),
		"breakdown": gin.H{
			"hours_worked": req.HoursWorked,
			"tasks_done":   req.TasksDone,
			"breaks_taken": req.BreaksTaken,
			"mood":         mood,
		},
		"timestamp": assessment.Timestamp,
	})
}

type moodRequest struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

// HandleLogMood appends a mood entry to the history.
func (a *API) HandleLogMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		badRequest(c, "mood is required")
		return
	}

	entry := store.MoodRecord{
		Timestamp: timeutil.Now(),
		Mood:      req.Mood,
		Notes:     req.Notes,
	}
	a.moods.Append(entry)

	c.JSON(http.StatusOK, gin.H{
		"status":        "logged",
		"entry":         entry,
		"total_entries": a.moods.Len(),
	})
}

// HandleMoodHistory returns the tail of the mood history.
func (a *API) HandleMoodHistory(c *gin.Context) {
	limit, ok := parseLimit(c, 10, 100)
	if !ok {
		return
	}

	history := a.moods.Tail(limit)
	c.JSON(http.StatusOK, gin.H{
		"mood_history": history,
		"count":        len(history),
	})
}

// roundScore rounds to two decimals for display; stored values stay unrounded.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
