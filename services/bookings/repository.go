package bookings

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unirides/unirides/services/bookings BookingRepo

// BookingRepo defines booking data access
type BookingRepo interface {
	// CreateBooking stores the booking and takes a seat on its ride in one
	// transaction. The returned ride is nil when the ride does not exist.
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Ride, error)
	ListBookingsByPassenger(ctx context.Context, passengerID string) ([]*models.Booking, error)
	ListBookingsByDriver(ctx context.Context, driverID string) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, apply func(*models.Booking) error) (*models.Booking, error)
}
