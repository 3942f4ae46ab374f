package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
)

type progressRequest struct {
	UserID         string `json:"user_id"`
	XPEarned       int    `json:"xp_earned"`
	TasksCompleted int    `json:"tasks_completed"`
	Streak         int    `json:"streak"`
}

// HandleRecordProgress accumulates one progress submission for a user.
func (a *API) HandleRecordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		badRequest(c, "user_id is required")
		return
	}
	if req.XPEarned < 0 {
		badRequest(c, "xp_earned must be non-negative")
		return
	}
	if req.TasksCompleted < 0 {
		badRequest(c, "tasks_completed must be non-negative")
		return
	}
	if req.Streak < 0 {
		badRequest(c, "streak must be non-negative")
		return
	}

	updated := a.progress.Record(req.UserID, req.XPEarned, req.TasksCompleted, req.Streak, timeutil.Now())

	c.JSON(http.StatusOK, gin.H{
		"status":      "recorded",
		"user_id":     updated.UserID,
		"total_xp":    updated.TotalXP,
		"total_tasks": updated.TotalTasks,
		"max_streak":  updated.MaxStreak,
	})
}

// HandleGetProgress returns a user's accumulated progress. Unseen users get
// a zero-valued record.
func (a *API) HandleGetProgress(c *gin.Context) {
	progress := a.progress.Get(c.Param("user_id"))

	c.JSON(http.StatusOK, gin.H{
		"user_id":     progress.UserID,
		"total_xp":    progress.TotalXP,
		"total_tasks": progress.TotalTasks,
		"max_streak":  progress.MaxStreak,
		"entries":     progress.Entries,
	})
}
