// Package circuitbreaker guards storage calls so a failing backend fails fast
// instead of piling up requests behind it.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned without calling the guarded function while the circuit is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{StateClosed: "closed", StateOpen: "open", StateHalfOpen: "half-open"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config tunes a breaker.
type Config struct {
	// Name labels the breaker in logs, metrics and readiness output.
	Name string
	// FailureThreshold consecutive failures open a closed circuit.
	FailureThreshold int
	// SuccessThreshold consecutive half-open successes close the circuit.
	SuccessThreshold int
	// Timeout is how long an open circuit rejects calls before probing.
	Timeout time.Duration
	// IsFailure filters which errors count. Nil counts every error except context.Canceled.
	IsFailure func(error) bool
	// OnStateChange runs outside the lock after a call moved the breaker.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig opens after 5 failures and probes again after 30s.
func DefaultConfig() Config {
	return Config{
		Name:             "circuit-breaker",
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker is safe for concurrent use.
type CircuitBreaker struct {
	cfg Config

	mu        sync.RWMutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
}

// New builds a closed breaker. Thresholds below 1 are raised to 1.
func New(cfg Config) *CircuitBreaker {
	cfg.FailureThreshold = max(cfg.FailureThreshold, 1)
	cfg.SuccessThreshold = max(cfg.SuccessThreshold, 1)
	return &CircuitBreaker{cfg: cfg}
}

func (cb *CircuitBreaker) Name() string { return cb.cfg.Name }

// Execute runs fn unless ctx is already done or the circuit is open.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from, ok := cb.admit()
	if !ok {
		return ErrCircuitOpen
	}

	err := fn()

	cb.mu.Lock()
	if err != nil && cb.isFailure(err) {
		cb.recordFailure()
	} else {
		cb.recordSuccess()
	}
	to := cb.state
	cb.mu.Unlock()

	if from != to && cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, from, to)
	}
	return err
}

// Call is Execute for functions that return a value.
func Call[T any](ctx context.Context, cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	var out T
	err := cb.Execute(ctx, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

// admit reports the state seen on entry and whether the call may proceed.
// An open circuit whose timeout elapsed moves to half-open.
func (cb *CircuitBreaker) admit() (State, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	from := cb.state
	if cb.state != StateOpen {
		return from, true
	}
	if time.Since(cb.openedAt) < cb.cfg.Timeout {
		return from, false
	}
	cb.successes = 0
	cb.setState(StateHalfOpen)
	return from, true
}

func (cb *CircuitBreaker) isFailure(err error) bool {
	switch {
	case errors.Is(err, context.Canceled):
		return false
	case cb.cfg.IsFailure != nil:
		return cb.cfg.IsFailure(err)
	default:
		return true
	}
}

// recordFailure and recordSuccess run with cb.mu held.
func (cb *CircuitBreaker) recordFailure() {
	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
		cb.openedAt = time.Now()
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.failures = 0
	if cb.state != StateHalfOpen {
		return
	}
	cb.successes++
	if cb.successes >= cb.cfg.SuccessThreshold {
		cb.successes = 0
		cb.setState(StateClosed)
	}
}

func (cb *CircuitBreaker) setState(to State) {
	if cb.state == to {
		return
	}
	log.Info().
		Str("circuit_breaker", cb.cfg.Name).
		Stringer("from", cb.state).
		Stringer("to", to).
		Msg("Circuit breaker state change")
	cb.state = to
}

// State returns the current position.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Snapshot is a point-in-time view used by readiness checks.
type Snapshot struct {
	Name     string
	State    State
	Failures int
	OpenedAt time.Time
}

// Healthy is true only for a closed circuit.
func (s Snapshot) Healthy() bool { return s.State == StateClosed }

func (cb *CircuitBreaker) Snapshot() Snapshot {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return Snapshot{Name: cb.cfg.Name, State: cb.state, Failures: cb.failures, OpenedAt: cb.openedAt}
}
