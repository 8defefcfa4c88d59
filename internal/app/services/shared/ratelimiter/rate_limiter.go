package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// OutboundLimiter throttles calls to the upstream API with a token bucket.
// A nil limiter, or one built with a non-positive rate, never blocks.
type OutboundLimiter struct {
	limiter *rate.Limiter
}

func NewOutboundLimiter(maxRequestsPerSecond int) *OutboundLimiter {
	if maxRequestsPerSecond <= 0 {
		return &OutboundLimiter{}
	}
	return &OutboundLimiter{
		limiter: rate.NewLimiter(rate.Limit(maxRequestsPerSecond), maxRequestsPerSecond),
	}
}

// Wait blocks until a token is available or ctx is done.
func (l *OutboundLimiter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}

func (l *OutboundLimiter) Enabled() bool {
	return l != nil && l.limiter != nil
}
