package genai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvishwakchander/NeuroX2/internal/observability"
)

func testLogger() *observability.Logger {
	return observability.NewLogger(observability.LogConfig{Level: "error", Output: io.Discard})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: server.URL,
		Timeout: timeout,
	}, testLogger(), &observability.Metrics{})
}

func TestClientGenerateSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  generated text  "}]}}]}`))
	}, 5*time.Second)

	text, ok := client.Generate(context.Background(), "hello").Text()
	require.True(t, ok)
	assert.Equal(t, "generated text", text)
}

func TestClientGenerateServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}, 5*time.Second)

	_, ok := client.Generate(context.Background(), "hello").Text()
	assert.False(t, ok)
}

func TestClientGenerateMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}, 5*time.Second)

	_, ok := client.Generate(context.Background(), "hello").Text()
	assert.False(t, ok)
}

func TestClientGenerateEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}, 5*time.Second)

	_, ok := client.Generate(context.Background(), "hello").Text()
	assert.False(t, ok)
}

func TestClientGenerateTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"late"}]}}]}`))
	}, 50*time.Millisecond)

	start := time.Now()
	_, ok := client.Generate(context.Background(), "hello").Text()
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestClientConnected(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"}, testLogger(), &observability.Metrics{})
	assert.True(t, client.Connected())

	empty := NewClient(Config{}, testLogger(), &observability.Metrics{})
	assert.False(t, empty.Connected())
}

func TestResultVariants(t *testing.T) {
	text, ok := Generated("hi").Text()
	assert.True(t, ok)
	assert.Equal(t, "hi", text)

	text, ok = Unavailable().Text()
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestMockGeneratorRecordsPrompts(t *testing.T) {
	mock := &MockGenerator{Response: "canned"}

	text, ok := mock.Generate(context.Background(), "prompt one").Text()
	require.True(t, ok)
	assert.Equal(t, "canned", text)

	failing := &MockGenerator{}
	_, ok = failing.Generate(context.Background(), "prompt two").Text()
	assert.False(t, ok)

	assert.Equal(t, []string{"prompt one"}, mock.Prompts())
}
