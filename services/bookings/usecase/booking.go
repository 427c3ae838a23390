package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/bookings"
)

// BookingUC implements bookings.BookingUC
type BookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(cfg *models.Config, bookingRepo bookings.BookingRepo, bookingGW bookings.BookingGW) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
	}
}

// CreateBooking books a seat directly. The ride loses one seat in the same
// transaction; a booking against an unknown ride is still stored.
func (uc *BookingUC) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if strings.TrimSpace(booking.RideID) == "" {
		return nil, fmt.Errorf("%w: ride_id is required", models.ErrValidation)
	}
	if strings.TrimSpace(booking.PassengerID) == "" {
		return nil, fmt.Errorf("%w: passenger_id is required", models.ErrValidation)
	}

	now := models.Now()
	booking.ID = uuid.New().String()
	booking.RequestID = ""
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	ride, err := uc.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if ride == nil {
		logger.Warn("Booking created for unknown ride",
			logger.String("booking_id", booking.ID),
			logger.String("ride_id", booking.RideID))
	} else {
		logger.Info("Booking created",
			logger.String("booking_id", booking.ID),
			logger.String("ride_id", ride.ID),
			logger.Int("available_seats", ride.AvailableSeats),
			logger.String("ride_status", string(ride.Status)))
	}

	if err := uc.bookingGW.PublishBookingCreated(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking created event",
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}
	return booking, nil
}

// GetBookings lists a student's bookings as passenger or a driver's
// bookings on their rides
func (uc *BookingUC) GetBookings(ctx context.Context, userID string, userType models.UserType) ([]*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", models.ErrValidation)
	}

	switch userType {
	case models.UserTypeStudent:
		return uc.bookingRepo.ListBookingsByPassenger(ctx, userID)
	case models.UserTypeDriver:
		return uc.bookingRepo.ListBookingsByDriver(ctx, userID)
	}
	return nil, models.ErrInvalidUserType
}

// UpdateBooking changes the booking status. Seats are not given back on
// cancellation.
func (uc *BookingUC) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", models.ErrValidation, *update.Status)
	}

	booking, err := uc.bookingRepo.UpdateBooking(ctx, id, func(b *models.Booking) error {
		b.Apply(update)
		b.UpdatedAt = models.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Booking updated",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(booking.Status)))

	if err := uc.bookingGW.PublishBookingUpdated(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking updated event",
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}
	return booking, nil
}
