package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("down")
	calls := 0
	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 2, calls)
}

func TestRetry_PermanentStopsImmediately(t *testing.T) {
	sentinel := errors.New("bad request")
	calls := 0
	err := Retry(context.Background(), 5, time.Millisecond, func() error {
		calls++
		return Stop(sentinel)
	})
	require.ErrorIs(t, err, sentinel)
	var perm *Permanent
	require.ErrorAs(t, err, &perm)
	require.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, 5, time.Hour, func() error {
		calls++
		cancel()
		return errors.New("fail")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, time.Minute, nil)
	fail := errors.New("fail")

	require.ErrorIs(t, cb.Execute(context.Background(), func() error { return fail }), fail)
	require.Equal(t, StateClosed, cb.State())
	require.ErrorIs(t, cb.Execute(context.Background(), func() error { return fail }), fail)
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, time.Second, nil)
	now := time.Now()
	cb.now = func() time.Time { return now }

	require.Error(t, cb.Execute(context.Background(), func() error { return errors.New("fail") }))
	require.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	require.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Second, nil)
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errors.New("fail") })
	}
	require.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	require.Error(t, cb.Execute(context.Background(), func() error { return errors.New("still failing") }))
	require.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_SingleProbeWhileHalfOpen(t *testing.T) {
	defer goleak.VerifyNone(t)

	cb := NewCircuitBreaker("test", 1, time.Millisecond, nil)
	require.Error(t, cb.Execute(context.Background(), func() error { return errors.New("fail") }))
	time.Sleep(5 * time.Millisecond)

	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = cb.Execute(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	require.ErrorIs(t, cb.Execute(context.Background(), func() error { return nil }), ErrCircuitOpen)
	close(release)
	wg.Wait()
	require.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_IgnoresCallerAndPermanentErrors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
	}{
		{name: "caller cancelled", ctx: cancelled, err: context.Canceled},
		{name: "rejected request", ctx: context.Background(), err: Stop(errors.New("bad status code: 404"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewCircuitBreaker("test", 2, time.Minute, nil)
			for i := 0; i < 5; i++ {
				require.ErrorIs(t, cb.Execute(tt.ctx, func() error { return tt.err }), tt.err)
			}
			require.Equal(t, StateClosed, cb.State())

			called := false
			require.NoError(t, cb.Execute(context.Background(), func() error { called = true; return nil }))
			require.True(t, called)
		})
	}
}

func TestCircuitBreaker_CancelledProbeKeepsHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, time.Second, nil)
	now := time.Now()
	cb.now = func() time.Time { return now }

	require.Error(t, cb.Execute(context.Background(), func() error { return errors.New("fail") }))
	now = now.Add(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, cb.Execute(ctx, func() error { return ctx.Err() }))
	require.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	require.Equal(t, StateClosed, cb.State())
}
