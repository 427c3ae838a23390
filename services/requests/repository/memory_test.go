package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/requests"
)

func seededStore(t *testing.T) *memstore.Store {
	store := memstore.New()
	require.NoError(t, store.Update(func(tx *memstore.Tx) error {
		tx.PutRide(&models.Ride{ID: "r-1", AvailableSeats: 2, Status: models.RideStatusAvailable, Passengers: []string{}})
		tx.PutRequest(&models.Request{ID: "q-1", RideID: "r-1", PassengerID: "s-1", DriverID: "d-1", Status: models.RequestStatusPending})
		return nil
	}))
	return store
}

func accept(reserve bool) func(*models.Request) (*requests.Cascade, error) {
	return func(r *models.Request) (*requests.Cascade, error) {
		r.Status = models.RequestStatusAccepted
		b := models.BookingFromRequest(r)
		b.ID = "b-1"
		return &requests.Cascade{Booking: b, ReserveSeat: reserve}, nil
	}
}

func rideSeats(t *testing.T, store *memstore.Store) int {
	var seats int
	require.NoError(t, store.View(func(tx *memstore.Tx) error {
		ride, ok := tx.Ride("r-1")
		require.True(t, ok)
		seats = ride.AvailableSeats
		return nil
	}))
	return seats
}

func TestMemoryRequestRepo_UpdateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade inserts the booking and leaves the ride", func(t *testing.T) {
		store := seededStore(t)
		repo := NewMemoryRequestRepo(store)

		req, booking, err := repo.UpdateRequest(ctx, "q-1", accept(false))
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusAccepted, req.Status)
		require.NotNil(t, booking)
		assert.Equal(t, "q-1", booking.RequestID)
		assert.Equal(t, 2, rideSeats(t, store))

		require.NoError(t, store.View(func(tx *memstore.Tx) error {
			got := tx.Bookings(func(b *models.Booking) bool { return b.RequestID == "q-1" })
			assert.Len(t, got, 1)
			return nil
		}))
	})

	t.Run("cascade can reserve a seat", func(t *testing.T) {
		store := seededStore(t)
		repo := NewMemoryRequestRepo(store)

		_, _, err := repo.UpdateRequest(ctx, "q-1", accept(true))
		require.NoError(t, err)
		assert.Equal(t, 1, rideSeats(t, store))
	})

	t.Run("apply error leaves both tables untouched", func(t *testing.T) {
		store := seededStore(t)
		repo := NewMemoryRequestRepo(store)

		_, _, err := repo.UpdateRequest(ctx, "q-1", func(r *models.Request) (*requests.Cascade, error) {
			r.Status = models.RequestStatusRejected
			return nil, models.ErrInvalidTransition
		})
		assert.ErrorIs(t, err, models.ErrInvalidTransition)

		list, err := repo.ListRequestsByDriver(ctx, "d-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, models.RequestStatusPending, list[0].Status)
	})

	t.Run("missing request", func(t *testing.T) {
		store := seededStore(t)
		repo := NewMemoryRequestRepo(store)

		_, _, err := repo.UpdateRequest(ctx, "missing", accept(true))
		assert.ErrorIs(t, err, models.ErrRequestNotFound)
		assert.Equal(t, 2, rideSeats(t, store))
	})
}

func TestMemoryRequestRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo(memstore.New())
	require.NoError(t, repo.CreateRequest(ctx, &models.Request{ID: "q-1", PassengerID: "s-1", DriverID: "d-1"}))
	require.NoError(t, repo.CreateRequest(ctx, &models.Request{ID: "q-2", PassengerID: "s-2", DriverID: "d-1"}))

	byDriver, err := repo.ListRequestsByDriver(ctx, "d-1")
	require.NoError(t, err)
	assert.Len(t, byDriver, 2)

	byPassenger, err := repo.ListRequestsByPassenger(ctx, "s-2")
	require.NoError(t, err)
	require.Len(t, byPassenger, 1)
	assert.Equal(t, "q-2", byPassenger[0].ID)
}
