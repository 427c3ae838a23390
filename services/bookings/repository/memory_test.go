package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
)

func newStoreWithRide(t *testing.T, seats int) *memstore.Store {
	store := memstore.New()
	require.NoError(t, store.Update(func(tx *memstore.Tx) error {
		status := models.RideStatusAvailable
		if seats == 0 {
			status = models.RideStatusFull
		}
		tx.PutRide(&models.Ride{ID: "r-1", DriverID: "d-1", AvailableSeats: seats, Status: status, Passengers: []string{}})
		return nil
	}))
	return store
}

func TestMemoryBookingRepo_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("takes the last seat", func(t *testing.T) {
		store := newStoreWithRide(t, 1)
		repo := NewMemoryBookingRepo(store)

		ride, err := repo.CreateBooking(ctx, &models.Booking{ID: "b-1", RideID: "r-1", PassengerID: "p-1", DriverID: "d-1"})
		require.NoError(t, err)
		assert.Equal(t, 0, ride.AvailableSeats)
		assert.Equal(t, models.RideStatusFull, ride.Status)
		assert.Equal(t, []string{"p-1"}, ride.Passengers)
	})

	t.Run("full ride is overbooked without going negative", func(t *testing.T) {
		store := newStoreWithRide(t, 0)
		repo := NewMemoryBookingRepo(store)

		ride, err := repo.CreateBooking(ctx, &models.Booking{ID: "b-1", RideID: "r-1", PassengerID: "p-1"})
		require.NoError(t, err)
		assert.Equal(t, 0, ride.AvailableSeats)
		assert.Equal(t, models.RideStatusFull, ride.Status)

		list, err := repo.ListBookingsByPassenger(ctx, "p-1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unknown ride still stores the booking", func(t *testing.T) {
		repo := NewMemoryBookingRepo(memstore.New())

		ride, err := repo.CreateBooking(ctx, &models.Booking{ID: "b-1", RideID: "ghost", PassengerID: "p-1"})
		require.NoError(t, err)
		assert.Nil(t, ride)

		list, err := repo.ListBookingsByPassenger(ctx, "p-1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestMemoryBookingRepo_ListAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepo(memstore.New())
	_, err := repo.CreateBooking(ctx, &models.Booking{ID: "b-1", PassengerID: "p-1", DriverID: "d-1", Status: models.BookingStatusPending})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, &models.Booking{ID: "b-2", PassengerID: "p-2", DriverID: "d-1", Status: models.BookingStatusPending})
	require.NoError(t, err)

	byDriver, err := repo.ListBookingsByDriver(ctx, "d-1")
	require.NoError(t, err)
	require.Len(t, byDriver, 2)
	assert.Equal(t, "b-1", byDriver[0].ID)

	none, err := repo.ListBookingsByPassenger(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	updated, err := repo.UpdateBooking(ctx, "b-2", func(b *models.Booking) error {
		b.Status = models.BookingStatusActive
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusActive, updated.Status)

	_, err = repo.UpdateBooking(ctx, "missing", func(*models.Booking) error { return nil })
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}
