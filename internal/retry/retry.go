// Package retry wraps an asynchronous operation with bounded retry attempts
// and linearly increasing backoff. It deliberately makes no distinction
// between retryable and non-retryable failures: a 404 retries exactly like a
// connection reset, and the caller decides what to do with the final error.
package retry

import (
	"context"
	"time"
)

// Policy bounds a retry loop. The operation runs at least once regardless of
// MaxAttempts.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int `json:"max_attempts"`

	// BaseDelay scales the wait between attempts: after failed attempt n
	// the loop sleeps BaseDelay * n. Linear, not exponential.
	BaseDelay time.Duration `json:"base_delay"`
}

// DefaultPolicy returns the retry defaults used for upstream API calls.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
	}
}

// Operation is a single attempt of the wrapped call.
type Operation func(ctx context.Context) error

// OnRetry is an optional observer invoked after a failed attempt that will
// be retried. Behavior is identical when nil.
type OnRetry func(attempt int, delay time.Duration, err error)

// Do runs op up to policy.MaxAttempts times. The first attempt starts
// immediately; each failure before the last waits BaseDelay * attempt before
// the next try. The final attempt's error is returned verbatim, not wrapped.
//
// Attempts within one call are strictly sequential, and separate calls share
// no state. Cancelling ctx aborts between attempts and during backoff
// sleeps; the in-flight attempt itself is only bounded by whatever ctx the
// operation observes.
func Do(ctx context.Context, policy Policy, op Operation, notify OnRetry) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		delay := policy.BaseDelay * time.Duration(attempt)
		if notify != nil {
			notify(attempt, delay, lastErr)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
