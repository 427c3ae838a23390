package nats

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/circuitbreaker"
)

// GuardedPublisher skips publishing while the breaker is open so a NATS
// outage does not slow down every write
type GuardedPublisher struct {
	next    Publisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedPublisher wraps next with breaker
func NewGuardedPublisher(next Publisher, breaker *circuitbreaker.CircuitBreaker) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker}
}

// Publish implements Publisher
func (p *GuardedPublisher) Publish(subject string, data []byte) error {
	return p.breaker.Execute(context.Background(), func(context.Context) error {
		return p.next.Publish(subject, data)
	})
}
