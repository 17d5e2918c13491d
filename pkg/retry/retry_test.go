package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	p := NewPolicy(3, 10*time.Millisecond)

	calls := 0
	start := time.Now()
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 10*time.Millisecond, "no delay on immediate success")
}

func TestDoRetriesThenSucceeds(t *testing.T) {
	p := NewPolicy(3, 20*time.Millisecond)

	calls := 0
	start := time.Now()
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("store unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond, "two delays expected")
}

func TestDoExhaustsAttempts(t *testing.T) {
	p := NewPolicy(3, time.Millisecond)
	storeErr := errors.New("connection reset")

	calls := 0
	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return storeErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "3 attempts")
}

func TestDoCancelledDuringWait(t *testing.T) {
	p := NewPolicy(3, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := p.Do(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("store unavailable")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no further attempts after cancellation")
}

func TestDoOnAttemptHook(t *testing.T) {
	var attempts []int
	var results []error

	p := NewPolicy(2, time.Millisecond)
	p.OnAttempt = func(attempt int, err error) {
		attempts = append(attempts, attempt)
		results = append(results, err)
	}

	err := p.Do(context.Background(), func(ctx context.Context) error {
		if len(attempts) == 0 {
			return errors.New("first fails")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Error(t, results[0])
	assert.NoError(t, results[1])
}

func TestNewPolicyDefaults(t *testing.T) {
	p := NewPolicy(0, 0)
	assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts)
	assert.Equal(t, DefaultDelay, p.Delay)
}
