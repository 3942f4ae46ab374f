// Package genai is the boundary to the external text-generation service.
// Generation is best-effort: a failed call produces the Unavailable result,
// never an error, and callers substitute their own fallback text.
package genai

// Result is the outcome of one generation attempt. It has exactly two
// variants, Generated and Unavailable, so every call site handles the
// degraded path explicitly instead of relying on a nil sentinel.
type Result struct {
	text string
	ok   bool
}

// Generated wraps text produced by the service.
func Generated(text string) Result {
	return Result{text: text, ok: true}
}

// Unavailable is the absence signal for a failed attempt.
func Unavailable() Result {
	return Result{}
}

// Text returns the generated text and whether generation succeeded.
func (r Result) Text() (string, bool) {
	return r.text, r.ok
}
