package repository

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
)

// MemoryBookingRepo keeps bookings in the shared in-process store
type MemoryBookingRepo struct {
	store *memstore.Store
}

// NewMemoryBookingRepo creates a booking repository over store
func NewMemoryBookingRepo(store *memstore.Store) *MemoryBookingRepo {
	return &MemoryBookingRepo{store: store}
}

// CreateBooking stores the booking and reserves a seat under one lock
func (r *MemoryBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Ride, error) {
	var ride *models.Ride
	err := r.store.Update(func(tx *memstore.Tx) error {
		tx.PutBooking(booking)
		ride = ReserveSeat(tx, booking.RideID, booking.PassengerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// ListBookingsByPassenger returns the bookings of a passenger
func (r *MemoryBookingRepo) ListBookingsByPassenger(ctx context.Context, passengerID string) ([]*models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.PassengerID == passengerID })
}

// ListBookingsByDriver returns the bookings on a driver's rides
func (r *MemoryBookingRepo) ListBookingsByDriver(ctx context.Context, driverID string) ([]*models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.DriverID == driverID })
}

func (r *MemoryBookingRepo) list(keep func(*models.Booking) bool) ([]*models.Booking, error) {
	var out []*models.Booking
	err := r.store.View(func(tx *memstore.Tx) error {
		out = tx.Bookings(keep)
		return nil
	})
	return out, err
}

// UpdateBooking changes a booking under the store lock
func (r *MemoryBookingRepo) UpdateBooking(ctx context.Context, id string, apply func(*models.Booking) error) (*models.Booking, error) {
	var booking *models.Booking
	err := r.store.Update(func(tx *memstore.Tx) error {
		found, ok := tx.Booking(id)
		if !ok {
			return models.ErrBookingNotFound
		}
		if err := apply(found); err != nil {
			return err
		}
		found.ID = id
		tx.PutBooking(found)
		booking = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ReserveSeat takes a seat on rideID inside tx and warns when the ride was
// already full. It returns nil for an unknown ride.
func ReserveSeat(tx *memstore.Tx, rideID, passengerID string) *models.Ride {
	ride, hadSeat := tx.ReserveSeat(rideID, passengerID)
	if ride != nil && !hadSeat {
		logger.Warn("Booking ride without free seats",
			logger.String("ride_id", rideID),
			logger.String("passenger_id", passengerID))
	}
	return ride
}
