package ai

import (
	"context"
	"errors"
	"time"

	"resume-builder/internal/domain"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls to the wrapped generator to a requests-per-minute budget.
type RateLimited struct {
	next    TextGenerator
	limiter *rate.Limiter
}

// NewRateLimited returns next unchanged when qpm is not positive.
func NewRateLimited(next TextGenerator, qpm int) TextGenerator {
	if qpm <= 0 {
		return next
	}
	burst := qpm / 2
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(qpm)), burst),
	}
}

func (r *RateLimited) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		// a caller that went away gets its own error; a budget that cannot be
		// met before the deadline is an upstream failure
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", ctx.Err()
		}
		return "", &domain.UpstreamError{Op: "rate limit", Err: err}
	}
	return r.next.GenerateText(ctx, messages, maxTokens)
}
