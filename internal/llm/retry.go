package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryVerdict classifies a Generate error for the retry loop.
type retryVerdict int

const (
	giveUp      retryVerdict = iota // permanent, surface immediately
	tryAgain                        // transient, retry until attempts run out
	tryOnceMore                     // malformed output, worth one more call
)

func verdict(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// Truncation repeats until MaxTokens is raised, so retrying is futile.
		return giveUp
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return tryOnceMore
	}

	// Rate limits, 5xx and plain network errors are all transient.
	return tryAgain
}

// retryProvider re-runs failed Generate calls with exponential backoff
// and jitter. Wrap with WithRetry.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string {
	return r.next.ModelID()
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceMoreSpent := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.wait(attempt-1, lastErr)):
			}
		}

		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch verdict(err) {
		case giveUp:
			return nil, err
		case tryOnceMore:
			if onceMoreSpent {
				return nil, err
			}
			onceMoreSpent = true
		}
	}

	return nil, lastErr
}

// wait returns the pause before the next call, given how many calls
// have already failed. A rate-limit hint from the provider overrides
// the computed backoff.
func (r *retryProvider) wait(failed int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	backoff := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(failed))
	backoff = math.Min(backoff, float64(r.cfg.MaxWait))

	// ±20% jitter keeps concurrent callers from retrying in lockstep.
	backoff *= 0.8 + 0.4*rand.Float64()
	return time.Duration(backoff)
}
