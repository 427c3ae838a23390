package bookings

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unirides/unirides/services/bookings BookingUC

// BookingUC defines the booking business logic
type BookingUC interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBookings(ctx context.Context, userID string, userType models.UserType) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
}
