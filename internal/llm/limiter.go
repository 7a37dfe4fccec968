package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedJudge wraps a Judge with a token-bucket rate limiter.
// Judgment calls are sequential, but a run fires one call per field and
// per section; the limiter keeps the run under provider rate limits.
type RateLimitedJudge struct {
	judge   Judge
	limiter *rate.Limiter
}

// NewRateLimitedJudge wraps the given judge. A non-positive rate
// disables throttling.
func NewRateLimitedJudge(judge Judge, requestsPerSecond float64, burst int) *RateLimitedJudge {
	if burst <= 0 {
		burst = 1
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &RateLimitedJudge{
		judge:   judge,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Name returns the wrapped provider's name
func (r *RateLimitedJudge) Name() string {
	return r.judge.Name()
}

// Complete waits for rate-limit clearance, then delegates
func (r *RateLimitedJudge) Complete(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.judge.Complete(ctx, prompt)
}

// IsAvailable delegates to the wrapped provider
func (r *RateLimitedJudge) IsAvailable(ctx context.Context) bool {
	return r.judge.IsAvailable(ctx)
}
