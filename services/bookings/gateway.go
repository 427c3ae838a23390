package bookings

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/unirides/unirides/services/bookings BookingGW

// BookingGW publishes booking events
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishBookingUpdated(ctx context.Context, booking *models.Booking) error
}
