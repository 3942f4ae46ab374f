package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
)

type forumPostRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
	Topic   string `json:"topic"`
}

// HandleForumPost creates a forum post.
func (a *API) HandleForumPost(c *gin.Context) {
	var req forumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(c, "content is required")
		return
	}
	author := req.Author
	if author == "" {
		author = "Anonymous"
	}
	topic := req.Topic
	if topic == "" {
		topic = "general"
	}

	post := a.forum.Append(req.Content, author, topic, timeutil.Now())

	c.JSON(http.StatusOK, gin.H{
		"status":    "posted",
		"post_id":   post.ID,
		"timestamp": post.Timestamp,
	})
}

// HandleForumPosts returns the tail of the post collection, optionally
// filtered by topic (exact, case-sensitive).
func (a *API) HandleForumPosts(c *gin.Context) {
	limit, ok := parseLimit(c, 50, 500)
	if !ok {
		return
	}

	posts, total := a.forum.Tail(c.Query("topic"), limit)
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
		"total": total,
	})
}

// HandleForumTopics returns the unique set of topics.
func (a *API) HandleForumTopics(c *gin.Context) {
	topics := a.forum.Topics()
	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"count":  len(topics),
	})
}
