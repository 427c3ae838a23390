package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/unirides/unirides/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets calls through
	StateClosed State = iota
	// StateOpen rejects calls until the timeout passes
	StateOpen
	// StateHalfOpen lets a limited number of probe calls through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen is returned without calling fn while the breaker is open or the
// half-open probe budget is spent
var ErrOpen = errors.New("circuit breaker is open")

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	MaxRequests      uint32        // probe calls allowed while half-open
	Interval         time.Duration // failure counters reset this often while closed
	Timeout          time.Duration // time spent open before probing
	FailureThreshold uint32        // consecutive failures that open the breaker
}

// DefaultConfig returns the configuration used for event publishing
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// CircuitBreaker stops calling a failing dependency for a while
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu                  sync.Mutex
	state               State
	requests            uint32
	consecutiveFailures uint32
	expiry              time.Time
}

// New creates a closed circuit breaker
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if l == nil {
		l = logger.NewNopLogger()
	}
	cb := &CircuitBreaker{config: config, logger: l, now: time.Now}
	cb.expiry = cb.now().Add(config.Interval)
	return cb
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.afterRequest(err)
	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	switch cb.state {
	case StateClosed:
		if cb.expiry.Before(now) {
			cb.reset(now.Add(cb.config.Interval))
		}
	case StateOpen:
		if !cb.expiry.Before(now) {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.reset(time.Time{})
	case StateHalfOpen:
		if cb.requests >= cb.config.MaxRequests {
			return ErrOpen
		}
	}

	cb.requests++
	return nil
}

func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	if err == nil {
		cb.consecutiveFailures = 0
		if cb.state == StateHalfOpen {
			cb.setState(StateClosed)
			cb.reset(now.Add(cb.config.Interval))
		}
		return
	}

	cb.consecutiveFailures++
	if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.config.FailureThreshold {
		cb.setState(StateOpen)
		cb.reset(now.Add(cb.config.Timeout))
	}
}

func (cb *CircuitBreaker) reset(expiry time.Time) {
	cb.requests = 0
	cb.consecutiveFailures = 0
	cb.expiry = expiry
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	cb.logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()))
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
