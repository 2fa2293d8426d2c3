package ratelimiter

import (
	"context"
	"math/rand"
	"time"
)

const (
	// DefaultAttempts is the bounded retry count for upstream calls.
	DefaultAttempts = 5
	// DefaultBaseDelay is the first backoff interval.
	DefaultBaseDelay = 500 * time.Millisecond
	// DefaultMaxDelay caps a single backoff interval.
	DefaultMaxDelay = 8 * time.Second
)

// Retry runs fn up to attempts times, sleeping with exponential backoff and
// full jitter between attempts. Only errors for which retryable returns true
// are retried; everything else is returned immediately. Context cancellation
// ends the loop, so the caller's deadline is the total budget.
func Retry(ctx context.Context, attempts int, base, max time.Duration, retryable func(error) bool, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if max <= 0 {
		max = DefaultMaxDelay
	}

	var err error
	delay := base
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		// Full jitter: sleep a random duration in [0, delay)
		sleep := time.Duration(rand.Int63n(int64(delay)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}

		delay *= 2
		if delay > max {
			delay = max
		}
	}
	return err
}
