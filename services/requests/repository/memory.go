package repository

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
	bookingsrepo "github.com/unirides/unirides/services/bookings/repository"
	"github.com/unirides/unirides/services/requests"
)

// MemoryRequestRepo keeps requests in the shared in-process store
type MemoryRequestRepo struct {
	store *memstore.Store
}

// NewMemoryRequestRepo creates a request repository over store
func NewMemoryRequestRepo(store *memstore.Store) *MemoryRequestRepo {
	return &MemoryRequestRepo{store: store}
}

// CreateRequest stores a new request
func (r *MemoryRequestRepo) CreateRequest(ctx context.Context, request *models.Request) error {
	return r.store.Update(func(tx *memstore.Tx) error {
		tx.PutRequest(request)
		return nil
	})
}

// ListRequestsByDriver returns the requests addressed to a driver
func (r *MemoryRequestRepo) ListRequestsByDriver(ctx context.Context, driverID string) ([]*models.Request, error) {
	return r.list(func(q *models.Request) bool { return q.DriverID == driverID })
}

// ListRequestsByPassenger returns the requests sent by a passenger
func (r *MemoryRequestRepo) ListRequestsByPassenger(ctx context.Context, passengerID string) ([]*models.Request, error) {
	return r.list(func(q *models.Request) bool { return q.PassengerID == passengerID })
}

func (r *MemoryRequestRepo) list(keep func(*models.Request) bool) ([]*models.Request, error) {
	var out []*models.Request
	err := r.store.View(func(tx *memstore.Tx) error {
		out = tx.Requests(keep)
		return nil
	})
	return out, err
}

// UpdateRequest applies the change and its cascade under one store lock
func (r *MemoryRequestRepo) UpdateRequest(ctx context.Context, id string, apply func(*models.Request) (*requests.Cascade, error)) (*models.Request, *models.Booking, error) {
	var (
		request *models.Request
		booking *models.Booking
	)
	err := r.store.Update(func(tx *memstore.Tx) error {
		found, ok := tx.Request(id)
		if !ok {
			return models.ErrRequestNotFound
		}
		cascade, err := apply(found)
		if err != nil {
			return err
		}
		found.ID = id
		tx.PutRequest(found)
		request = found

		if cascade == nil {
			return nil
		}
		tx.PutBooking(cascade.Booking)
		if cascade.ReserveSeat {
			bookingsrepo.ReserveSeat(tx, cascade.Booking.RideID, cascade.Booking.PassengerID)
		}
		booking = cascade.Booking
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return request, booking, nil
}
