// Package retry implements a bounded fixed-delay retry policy for
// idempotent operations.
package retry

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 5000 * time.Millisecond
)

// ExhaustedError is returned when every attempt failed. It wraps the error
// from the final attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Policy re-runs an operation up to MaxAttempts times, waiting Delay between
// attempts. The delay is fixed, not exponential.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration

	// OnAttempt is called after every attempt with its result, success or
	// failure. Optional, diagnostics only.
	OnAttempt func(attempt int, err error)
}

func NewPolicy(maxAttempts int, delay time.Duration) Policy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Policy{MaxAttempts: maxAttempts, Delay: delay}
}

// Do runs op until it succeeds, the attempt budget is spent, or ctx is
// cancelled. Attempts are strictly sequential: attempt N+1 starts only after
// attempt N failed and the full delay elapsed. Cancelling ctx during the
// wait abandons the pending attempt and returns ctx.Err().
func (p Policy) Do(ctx context.Context, op func(context.Context) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	delay := p.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op(ctx)
		if p.OnAttempt != nil {
			p.OnAttempt(attempt, lastErr)
		}
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	return &ExhaustedError{Attempts: maxAttempts, Err: lastErr}
}
