package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The typed errors below carry the retry decorator's vocabulary: rate
// limits and outages are transient, schema failures get one more try,
// truncation is a configuration problem and is surfaced as-is.

// ErrRateLimit reports a 429 from the provider. RetryAfter holds the
// server-advised wait when one was given, zero otherwise.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("provider rate limit (advised wait %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that is not valid JSON or does
// not satisfy the requested schema. Content keeps the offending output
// for diagnosis.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("unusable model output: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports an unreachable or failing backend.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports generation cut off at the MaxTokens limit.
// Content holds the truncated output.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model output truncated at the token limit"
}

// errFromStatus folds an HTTP status from any SDK into this package's
// error taxonomy. Every SDK reports rate limiting and outages the same
// way at the HTTP layer, so the providers share this one classifier.
func errFromStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
