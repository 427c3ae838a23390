package memstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
)

func TestStore_RidesKeepInsertionOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutRide(&models.Ride{ID: "r1"})
		tx.PutRide(&models.Ride{ID: "r2"})
		tx.PutRide(&models.Ride{ID: "r3"})
		tx.PutRide(&models.Ride{ID: "r2", Price: 5})
		assert.True(t, tx.DeleteRide("r1"))
		assert.False(t, tx.DeleteRide("missing"))
		return nil
	}))

	var ids []string
	require.NoError(t, s.View(func(tx *Tx) error {
		for _, r := range tx.Rides() {
			ids = append(ids, r.ID)
		}
		return nil
	}))
	assert.Equal(t, []string{"r2", "r3"}, ids)
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutRide(&models.Ride{ID: "r1", AvailableSeats: 3})
		tx.PutRequest(&models.Request{ID: "q1", Status: models.RequestStatusPending})
		tx.PutLocation("u1", models.Location{Latitude: 1})
		return nil
	}))

	boom := errors.New("boom")
	err := s.Update(func(tx *Tx) error {
		tx.PutRequest(&models.Request{ID: "q1", Status: models.RequestStatusAccepted})
		tx.PutBooking(&models.Booking{ID: "b1", RequestID: "q1"})
		tx.PutRide(&models.Ride{ID: "r1", AvailableSeats: 2})
		tx.DeleteRide("r1")
		tx.PutLocation("u1", models.Location{Latitude: 2})
		tx.PutLocation("u2", models.Location{Latitude: 3})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.View(func(tx *Tx) error {
		q, ok := tx.Request("q1")
		require.True(t, ok)
		assert.Equal(t, models.RequestStatusPending, q.Status)

		_, ok = tx.Booking("b1")
		assert.False(t, ok)

		r, ok := tx.Ride("r1")
		require.True(t, ok)
		assert.Equal(t, 3, r.AvailableSeats)
		assert.Len(t, tx.Rides(), 1)

		loc, ok := tx.Location("u1")
		require.True(t, ok)
		assert.Equal(t, 1.0, loc.Latitude)
		_, ok = tx.Location("u2")
		assert.False(t, ok)
		return nil
	}))
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutRide(&models.Ride{ID: "r1", Passengers: []string{"p1"}})
		tx.PutUser(&models.User{ID: "u1", Email: "Driver@UoH.edu", Vehicle: &models.Vehicle{Capacity: 4}})
		return nil
	}))

	require.NoError(t, s.View(func(tx *Tx) error {
		r, _ := tx.Ride("r1")
		r.Passengers[0] = "changed"
		r.AvailableSeats = 99

		u, ok := tx.UserByEmail("driver@uoh.edu")
		require.True(t, ok)
		u.Vehicle.Capacity = 1
		return nil
	}))

	require.NoError(t, s.View(func(tx *Tx) error {
		r, _ := tx.Ride("r1")
		assert.Equal(t, []string{"p1"}, r.Passengers)
		assert.Equal(t, 0, r.AvailableSeats)

		u, _ := tx.User("u1")
		assert.Equal(t, 4, u.Vehicle.Capacity)
		return nil
	}))
}

func TestStore_Filters(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutBooking(&models.Booking{ID: "b1", PassengerID: "p1"})
		tx.PutBooking(&models.Booking{ID: "b2", PassengerID: "p2"})
		tx.PutRequest(&models.Request{ID: "q1", DriverID: "d1"})
		tx.PutRequest(&models.Request{ID: "q2", DriverID: "d2"})
		return nil
	}))

	require.NoError(t, s.View(func(tx *Tx) error {
		bs := tx.Bookings(func(b *models.Booking) bool { return b.PassengerID == "p2" })
		require.Len(t, bs, 1)
		assert.Equal(t, "b2", bs[0].ID)

		qs := tx.Requests(func(r *models.Request) bool { return r.DriverID == "d1" })
		require.Len(t, qs, 1)
		assert.Equal(t, "q1", qs[0].ID)

		assert.Len(t, tx.Bookings(nil), 2)
		assert.Empty(t, tx.Requests(func(*models.Request) bool { return false }))
		return nil
	}))
}

func TestStore_ViewRejectsWrites(t *testing.T) {
	s := New()
	assert.Panics(t, func() {
		_ = s.View(func(tx *Tx) error {
			tx.PutRide(&models.Ride{ID: "r1"})
			return nil
		})
	})
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutRide(&models.Ride{ID: "r1", AvailableSeats: 50})
		return nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(tx *Tx) error {
				r, _ := tx.Ride("r1")
				r.ReserveSeat("p")
				tx.PutRide(r)
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.View(func(tx *Tx) error {
		r, _ := tx.Ride("r1")
		assert.Equal(t, 0, r.AvailableSeats)
		assert.Len(t, r.Passengers, 50)
		assert.Equal(t, models.RideStatusFull, r.Status)
		return nil
	}))
}

func TestTx_ReserveSeat(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutRide(&models.Ride{ID: "r1", AvailableSeats: 1, Status: models.RideStatusAvailable})
		return nil
	}))

	require.NoError(t, s.Update(func(tx *Tx) error {
		ride, hadSeat := tx.ReserveSeat("r1", "p1")
		require.NotNil(t, ride)
		assert.True(t, hadSeat)
		assert.Equal(t, 0, ride.AvailableSeats)
		assert.Equal(t, models.RideStatusFull, ride.Status)

		ride, hadSeat = tx.ReserveSeat("r1", "p2")
		require.NotNil(t, ride)
		assert.False(t, hadSeat)
		assert.Equal(t, 0, ride.AvailableSeats)
		assert.Equal(t, []string{"p1", "p2"}, ride.Passengers)

		ride, _ = tx.ReserveSeat("missing", "p1")
		assert.Nil(t, ride)
		return nil
	}))
}
