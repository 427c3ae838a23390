package gateway

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/models"
	natspkg "github.com/unirides/unirides/internal/pkg/nats"
)

// BookingGW publishes booking events to NATS
type BookingGW struct {
	publisher natspkg.Publisher
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(publisher natspkg.Publisher) *BookingGW {
	return &BookingGW{publisher: publisher}
}

// PublishBookingCreated publishes booking.created
func (g *BookingGW) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectBookingCreated, booking.ID, booking)
}

// PublishBookingUpdated publishes booking.updated
func (g *BookingGW) PublishBookingUpdated(ctx context.Context, booking *models.Booking) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectBookingUpdated, booking.ID, booking)
}
