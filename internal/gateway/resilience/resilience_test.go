package resilience_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"toolbox/internal/gateway/resilience"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errRemote = errors.New("remote failed")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func fail(context.Context) error { return errRemote }

func succeed(context.Context) error { return nil }

func TestCircuitBreakerLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := resilience.NewCircuitBreakerWithClock("remote", resilience.CircuitBreakerConfig{
		ErrorThreshold:   2,
		Timeout:          time.Second,
		SuccessThreshold: 2,
	}, clock.Now)

	require.ErrorIs(t, cb.Execute(ctx, fail), errRemote)
	assert.Equal(t, resilience.StateClosed, cb.GetState())

	require.ErrorIs(t, cb.Execute(ctx, fail), errRemote)
	assert.Equal(t, resilience.StateOpen, cb.GetState())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.False(t, called)

	clock.Advance(time.Second)
	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, resilience.StateHalfOpen, cb.GetState())

	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, resilience.StateClosed, cb.GetState())
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	cb := resilience.NewCircuitBreakerWithClock("remote", resilience.CircuitBreakerConfig{
		ErrorThreshold: 1,
		Timeout:        time.Minute,
	}, clock.Now)

	require.Error(t, cb.Execute(ctx, fail))
	assert.Equal(t, resilience.StateOpen, cb.GetState())

	clock.Advance(time.Minute)
	require.ErrorIs(t, cb.Execute(ctx, fail), errRemote)
	assert.Equal(t, resilience.StateOpen, cb.GetState())
	assert.ErrorIs(t, cb.Execute(ctx, succeed), resilience.ErrCircuitOpen)
}

func TestCircuitBreakerIgnoresCallerCancel(t *testing.T) {
	cb := resilience.NewCircuitBreaker("remote", resilience.CircuitBreakerConfig{ErrorThreshold: 1, Timeout: time.Minute})

	err := cb.Execute(context.Background(), func(context.Context) error { return context.Canceled })
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, resilience.StateClosed, cb.GetState())
}

func TestCircuitStateString(t *testing.T) {
	assert.Equal(t, "closed", resilience.StateClosed.String())
	assert.Equal(t, "open", resilience.StateOpen.String())
	assert.Equal(t, "half-open", resilience.StateHalfOpen.String())
	assert.Equal(t, "unknown", resilience.CircuitState(42).String())
}

func TestRetry(t *testing.T) {
	cfg := resilience.RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond, BackoffFactor: 2}

	t.Run("succeeds after failures", func(t *testing.T) {
		attempts := 0
		err := resilience.NewRetry("remote", cfg).Execute(context.Background(), func(context.Context) error {
			attempts++
			if attempts < 3 {
				return errRemote
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		err := resilience.NewRetry("remote", cfg).Execute(context.Background(), func(context.Context) error {
			attempts++
			return errRemote
		})
		require.ErrorIs(t, err, errRemote)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry deadline", func(t *testing.T) {
		attempts := 0
		err := resilience.NewRetry("remote", cfg).Execute(context.Background(), func(context.Context) error {
			attempts++
			return context.DeadlineExceeded
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		slow := resilience.RetryConfig{MaxAttempts: 5, InitialBackoff: time.Hour}

		err := resilience.NewRetry("remote", slow).Execute(ctx, func(context.Context) error {
			cancel()
			return errRemote
		})
		require.ErrorIs(t, err, resilience.ErrContextCanceled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExecute(t *testing.T) {
	policy := resilience.NewPolicy("remote",
		resilience.CircuitBreakerConfig{ErrorThreshold: 1, Timeout: time.Minute, SuccessThreshold: 1},
		resilience.RetryConfig{MaxAttempts: 2, InitialBackoff: time.Millisecond})

	calls := 0
	got, err := resilience.Execute(context.Background(), policy, "rewrite", func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errRemote
		}
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", got)
	assert.Equal(t, 2, calls)

	got, err = resilience.Execute(context.Background(), policy, "rewrite", func(context.Context) (string, error) {
		return "partial", errRemote
	})
	require.ErrorIs(t, err, errRemote)
	assert.Empty(t, got)
	assert.Equal(t, resilience.StateOpen, policy.State())

	_, err = resilience.Execute(context.Background(), policy, "rewrite", func(context.Context) (string, error) {
		return "unreachable", nil
	})
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
}
