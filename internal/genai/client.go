package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uvishwakchander/NeuroX2/internal/observability"
)

// Generator is the interface handlers depend on.
type Generator interface {
	Generate(ctx context.Context, prompt string) Result
}

// Config configures the generation client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the generative-language generateContent endpoint. Each request
// is attempted exactly once with a per-call timeout; every failure mode maps
// to the Unavailable result.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *observability.Logger
	metrics    *observability.Metrics
}

var _ Generator = (*Client)(nil)

// NewClient creates a generation client.
func NewClient(config Config, logger *observability.Logger, metrics *observability.Metrics) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := config.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiKey:  config.APIKey,
		model:   model,
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger.NewComponentLogger("genai"),
		metrics: metrics,
	}
}

// Connected reports whether the client holds a credential. It deliberately
// avoids a live API call so health checks stay free of external dependencies.
func (c *Client) Connected() bool {
	return c.apiKey != ""
}

// Generate sends the prompt to the generation service and returns the text,
// or Unavailable on any failure. The failure detail is logged and counted but
// never surfaces to the caller.
func (c *Client) Generate(ctx context.Context, prompt string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("generation unavailable", "error", err)
		c.metrics.RecordGeneration(ctx, "unavailable")
		return Unavailable()
	}

	c.metrics.RecordGeneration(ctx, "generated")
	return Generated(text)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	text := response.text()
	if text == "" {
		return "", fmt.Errorf("generation response contained no text")
	}
	return text, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		builder.WriteString(p.Text)
	}
	return strings.TrimSpace(builder.String())
}
