// Package ratelimiter paces outbound calls to rate-limited upstream APIs.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter is the pacing interface consumed by batch fetchers. Wait blocks
// until a call may proceed or the context is done.
type Limiter interface {
	Wait(ctx context.Context) error
}

// TokenBucket is a Limiter backed by a token bucket. Unlike sleeping between
// sequential requests, a shared bucket lets concurrent batch members draw
// permits from a single budget.
type TokenBucket struct {
	limiter *rate.Limiter
}

var _ Limiter = (*TokenBucket)(nil)

// NewTokenBucket creates a bucket refilled at perMinute permits per minute
// with the given burst size.
func NewTokenBucket(perMinute, burst int) *TokenBucket {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
	}
}

// Wait blocks until a permit is available or ctx is cancelled.
func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Unlimited is a Limiter that never blocks. Useful in tests and for
// providers without rate limits.
type Unlimited struct{}

var _ Limiter = Unlimited{}

// Wait returns immediately unless ctx is already done.
func (Unlimited) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
