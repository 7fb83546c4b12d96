package usecase

import (
	"context"
	"time"
)

// RetryPolicy is an explicit bounded-retry combinator: a fixed number of
// attempts with a fixed delay between them. It exists as a value (not a
// recursive helper) so tests can shrink it and callers can cancel it.

type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Do runs op up to MaxAttempts times, sleeping Backoff between attempts and
// honoring ctx cancellation during the sleep. It returns nil on the first
// success, otherwise the last attempt's error.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 && p.Backoff > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Backoff):
			}
		}
		if err = op(ctx); err == nil {
			return nil
		}
	}
	return err
}
