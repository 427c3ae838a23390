package gateway

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/models"
	natspkg "github.com/unirides/unirides/internal/pkg/nats"
)

// RequestGW publishes request events to NATS
type RequestGW struct {
	publisher natspkg.Publisher
}

// NewRequestGW creates a new request gateway
func NewRequestGW(publisher natspkg.Publisher) *RequestGW {
	return &RequestGW{publisher: publisher}
}

// PublishRequestCreated publishes request.created
func (g *RequestGW) PublishRequestCreated(ctx context.Context, request *models.Request) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectRequestCreated, request.ID, request)
}

// PublishRequestUpdated publishes request.updated
func (g *RequestGW) PublishRequestUpdated(ctx context.Context, request *models.Request) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectRequestUpdated, request.ID, request)
}

// PublishBookingCreated publishes booking.created for a booking made by
// accepting a request
func (g *RequestGW) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectBookingCreated, booking.ID, booking)
}
