// Package retry provides a bounded retry combinator with linear backoff
// used by the RPC gateway.
package retry

import (
	"context"
	"time"

	"github.com/superchain/token-explorer/internal/adapter"
)

// Policy controls how many times an operation is invoked and how long
// to wait between invocations. The delay before attempt n (1-based) is
// BaseDelay * n, so waits grow linearly.
type Policy struct {
	// MaxAttempts is the total number of invocations, including the
	// first one. A value <= 0 is treated as 1.
	MaxAttempts int

	// BaseDelay is the unit of the linear backoff.
	BaseDelay time.Duration
}

// Do invokes op up to p.MaxAttempts times, sleeping BaseDelay*attempt
// between invocations. If onRetry is non-nil it runs before each
// re-invocation, after the backoff sleep; callers use it to rebuild
// broken state such as a stale RPC connection. Do returns nil as soon
// as op succeeds, the context error if ctx is cancelled while waiting,
// and otherwise the error from the final invocation.
func Do(ctx context.Context, clock adapter.Clock, p Policy, op func(ctx context.Context) error, onRetry func(ctx context.Context)) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.After(p.BaseDelay * time.Duration(attempt-1)):
			}
			if onRetry != nil {
				onRetry(ctx)
			}
		}

		if err := op(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
