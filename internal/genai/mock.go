package genai

import (
	"context"
	"sync"
)

// MockGenerator implements Generator for testing. When Response is empty it
// reports the service as unavailable.
type MockGenerator struct {
	Response string

	mu      sync.Mutex
	prompts []string
}

var _ Generator = (*MockGenerator)(nil)

// Generate returns the canned response and records the prompt.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) Result {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Response == "" {
		return Unavailable()
	}
	return Generated(m.Response)
}

// Prompts returns the prompts received so far.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
