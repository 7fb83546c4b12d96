package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicy_Do(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		p := RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("recovers within budget", func(t *testing.T) {
		calls := 0
		p := RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("exhausts and returns last error", func(t *testing.T) {
		calls := 0
		last := errors.New("still down")
		p := RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return last
		})
		if !errors.Is(err, last) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		p := RetryPolicy{}
		_ = p.Do(context.Background(), func(context.Context) error {
			calls++
			return errors.New("x")
		})
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("cancellation stops the backoff wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		p := RetryPolicy{MaxAttempts: 5, Backoff: time.Minute}
		errFail := errors.New("down")
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		err := p.Do(ctx, func(context.Context) error {
			calls++
			return errFail
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call before cancellation, got %d", calls)
		}
	})
}
