package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/genai"
	"github.com/uvishwakchander/NeuroX2/internal/observability"
	"github.com/uvishwakchander/NeuroX2/internal/store"
	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
	"github.com/uvishwakchander/NeuroX2/internal/wellness"
)

const serviceName = "neurox-backend"

// API holds the handler set for all endpoints.
type API struct {
	logger       *observability.Logger
	generator    genai.Generator
	apiConnected bool
	assessor     *wellness.Assessor
	moods        *store.MoodStore
	forum        *store.ForumStore
	progress     *store.ProgressStore
}

// NewAPI creates the handler set.
func NewAPI(deps Deps) *API {
	return &API{
		logger:       deps.Logger.NewComponentLogger("api"),
		generator:    deps.Generator,
		apiConnected: deps.APIConnected,
		assessor:     deps.Assessor,
		moods:        deps.Moods,
		forum:        deps.Forum,
		progress:     deps.Progress,
	}
}

// HandleRoot is the liveness endpoint.
func (a *API) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"timestamp": timeutil.Now(),
	})
}

// HandleHealth reports service health and generation-service readiness.
func (a *API) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"api_connected": a.apiConnected,
		"timestamp":     timeutil.Now(),
	})
}

// HandleStats reports aggregate counters across all collections.
func (a *API) HandleStats(c *gin.Context) {
	users, totalXP, totalTasks := a.progress.Totals()
	c.JSON(http.StatusOK, gin.H{
		"total_users":           users,
		"total_xp_earned":       totalXP,
		"total_tasks_completed": totalTasks,
		"forum_posts":           a.forum.Len(),
		"mood_entries":          a.moods.Len(),
		"timestamp":             timeutil.Now(),
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// parseLimit reads the limit query parameter, enforcing 1..maxLimit inclusive.
func parseLimit(c *gin.Context, def, maxLimit int) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		badRequest(c, "limit must be an integer between 1 and "+strconv.Itoa(maxLimit))
		return 0, false
	}
	return limit, true
}
