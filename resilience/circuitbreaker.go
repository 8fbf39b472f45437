package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type CircuitBreaker struct {
	mu            sync.Mutex
	name          string
	state         State
	failureCount  int
	lastErrorTime time.Time
	threshold     int
	timeout       time.Duration
	probing       bool
	logger        *zap.Logger
	now           func() time.Time
}

func NewCircuitBreaker(name string, threshold int, timeout time.Duration, logger *zap.Logger) *CircuitBreaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CircuitBreaker{
		name:      name,
		state:     StateClosed,
		threshold: threshold,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Execute runs action unless the breaker is open. While half-open only a
// single probe is let through; its outcome closes or re-opens the breaker.
// Errors caused by ctx ending or marked Permanent leave the breaker as it was.
func (cb *CircuitBreaker) Execute(ctx context.Context, action func() error) error {
	cb.mu.Lock()
	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastErrorTime) <= cb.timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.probing = true
	}
	cb.mu.Unlock()

	err := action()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	wasHalfOpen := cb.state == StateHalfOpen
	cb.probing = false
	if err != nil && !countsAsFailure(ctx, err) {
		return err
	}
	if err != nil {
		cb.failureCount++
		cb.lastErrorTime = cb.now()
		if cb.failureCount >= cb.threshold || wasHalfOpen {
			if cb.state != StateOpen {
				cb.logger.Warn("circuit breaker opened",
					zap.String("breaker", cb.name),
					zap.Int("failures", cb.failureCount),
				)
			}
			cb.state = StateOpen
		}
		return err
	}

	if wasHalfOpen {
		cb.logger.Info("circuit breaker recovered", zap.String("breaker", cb.name))
	}
	cb.failureCount = 0
	cb.state = StateClosed
	return nil
}

// countsAsFailure reports whether err says something about the upstream.
// A caller that went away or a rejected request does not.
func countsAsFailure(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var perm *Permanent
	return !errors.As(err, &perm)
}
