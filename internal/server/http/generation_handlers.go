package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uvishwakchander/NeuroX2/internal/timeutil"
)

// Handlers backed by the generation proxy. Each defines its own static
// fallback so a service outage degrades the response instead of failing it;
// the "error" marker field tells clients which path they got.

const (
	generationUnavailable = "generation service unavailable"

	allyDisclaimer = "This companion offers supportive conversation, not professional care. If you are in crisis, please reach out to a qualified professional or local emergency services."

	allyFallback = "I'm here with you. Whatever you're carrying right now doesn't have to be carried alone — take one slow breath, and be kind to yourself today."
)

var questXP = map[string]int{
	"low":    5,
	"medium": 10,
	"high":   25,
}

type clarifyRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// HandleClarify rewrites a message in the requested tone.
func (a *API) HandleClarify(c *gin.Context) {
	var req clarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text is required")
		return
	}
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	prompt := fmt.Sprintf(
		"Rewrite the following message in a %s tone. Keep the meaning intact and reply with only the rewritten message.\n\nMessage: %s",
		tone, req.Text,
	)

	response := gin.H{
		"original":  req.Text,
		"tone":      tone,
		"timestamp": timeutil.Now(),
	}

	if text, ok := a.generator.Generate(c.Request.Context(), prompt).Text(); ok {
		response["clarified"] = text
	} else {
		response["clarified"] = "I couldn't polish this message right now, but here it is as written: " + req.Text
		response["error"] = generationUnavailable
	}

	c.JSON(http.StatusOK, response)
}

type questRequest struct {
	Task          string `json:"task"`
	Priority      string `json:"priority"`
	EstimatedTime *int   `json:"estimated_time"`
}

// HandleQuest turns a task into an RPG-style quest with an XP reward.
func (a *API) HandleQuest(c *gin.Context) {
	var req questRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		badRequest(c, "task is required")
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	estimatedTime := 30
	if req.EstimatedTime != nil {
		if *req.EstimatedTime < 0 {
			badRequest(c, "estimated_time must be non-negative")
			return
		}
		estimatedTime = *req.EstimatedTime
	}

	xp, ok := questXP[priority]
	if !ok {
		xp = questXP["medium"]
	}

	prompt := fmt.Sprintf(
		"Turn this task into a short, motivating RPG-style quest description of two or three sentences. Task: %s. Priority: %s. Estimated time: %d minutes.",
		req.Task, priority, estimatedTime,
	)

	response := gin.H{
		"xp":             xp,
		"priority":       priority,
		"estimated_time": estimatedTime,
		"timestamp":      timeutil.Now(),
	}

	if text, genOK := a.generator.Generate(c.Request.Context(), prompt).Text(); genOK {
		response["quest"] = text
	} else {
		response["quest"] = "Quest accepted: " + req.Task + ". Complete it to claim your reward!"
		response["error"] = generationUnavailable
	}

	c.JSON(http.StatusOK, response)
}

type mentalAllyRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// HandleMentalAlly provides a supportive reply to the user's message.
func (a *API) HandleMentalAlly(c *gin.Context) {
	var req mentalAllyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(c, "message is required")
		return
	}

	prompt := fmt.Sprintf(
		"You are a warm, supportive wellness companion. Respond with empathy in a few sentences. Do not give medical advice.\n\nUser message: %s",
		req.Message,
	)
	if req.Context != "" {
		prompt += "\nAdditional context: " + req.Context
	}

	response := gin.H{
		"timestamp":  timeutil.Now(),
		"disclaimer": allyDisclaimer,
	}

	if text, ok := a.generator.Generate(c.Request.Context(), prompt).Text(); ok {
		response["reply"] = text
	} else {
		response["reply"] = allyFallback
		response["error"] = generationUnavailable
	}

	c.JSON(http.StatusOK, response)
}
