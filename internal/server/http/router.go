package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/genai"
	"github.com/uvishwakchander/NeuroX2/internal/observability"
	"github.com/uvishwakchander/NeuroX2/internal/store"
	"github.com/uvishwakchander/NeuroX2/internal/wellness"
)

// Deps carries everything the handlers need. Stores are injected rather than
// ambient so tests can build a fresh isolated set per case.
type Deps struct {
	Logger       *observability.Logger
	Metrics      *observability.Metrics
	Generator    genai.Generator
	APIConnected bool
	Assessor     *wellness.Assessor
	Moods        *store.MoodStore
	Forum        *store.ForumStore
	Progress     *store.ProgressStore
}

// NewRouter creates the HTTP router with all endpoints.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Cross-origin requests are deliberately unrestricted: any origin, any
	// method, any header. Reconfirm before exposing this beyond a trusted
	// deployment.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	engine.Use(cors.New(corsConfig))

	engine.Use(RequestIDMiddleware())
	engine.Use(AccessLogMiddleware(deps.Logger))
	engine.Use(MetricsMiddleware(deps.Metrics))

	api := NewAPI(deps)

	engine.GET("/", api.HandleRoot)
	engine.GET("/health", api.HandleHealth)
	engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	engine.POST("/clarify", api.HandleClarify)
	engine.POST("/quest", api.HandleQuest)
	engine.POST("/mental-ally", api.HandleMentalAlly)

	engine.POST("/burnout", api.HandleBurnout)
	engine.POST("/mood", api.HandleLogMood)
	engine.GET("/mood-history", api.HandleMoodHistory)

	engine.POST("/forum/post", api.HandleForumPost)
	engine.GET("/forum/posts", api.HandleForumPosts)
	engine.GET("/forum/topics", api.HandleForumTopics)

	engine.POST("/progress", api.HandleRecordProgress)
	engine.GET("/progress/:user_id", api.HandleGetProgress)

	engine.GET("/stats", api.HandleStats)

	return engine
}
