package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/requests"
)

var requestRowColumns = []string{
	"id", "ride_id", "passenger_id", "passenger_name", "passenger_phone",
	"driver_id", "driver_name", "route_from", "route_to", "from_lat", "from_lng", "to_lat", "to_lng",
	"pickup_address", "departure_time", "price", "status", "created_at", "updated_at",
}

var rideRowColumns = []string{
	"id", "driver_id", "driver_name",
	"vehicle_model", "vehicle_plate", "vehicle_color", "vehicle_capacity",
	"route_from", "route_to", "from_lat", "from_lng", "to_lat", "to_lng", "pickup_address",
	"from_geohash", "departure_time", "available_seats", "price", "status", "passengers",
	"created_at", "updated_at",
}

func setupRequestRepoTest(t *testing.T) (*RequestRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRequestRepo(sqlxDB), mock
}

func requestRows(status string) *sqlmock.Rows {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(requestRowColumns).AddRow(
		"q-1", "r-1", "s-1", "Amina", "+252634111111",
		"d-1", "Omar", "Hargeisa", "Berbera", 9.5624, 44.0770, 10.4396, 45.0143,
		"", now.Add(24*time.Hour), 5.0, status, now, now,
	)
}

func acceptRequest(reserve bool) func(*models.Request) (*requests.Cascade, error) {
	return func(r *models.Request) (*requests.Cascade, error) {
		r.Status = models.RequestStatusAccepted
		r.Route.PickupAddress = "Main gate"
		b := models.BookingFromRequest(r)
		b.ID = "b-1"
		b.Status = models.BookingStatusPending
		return &requests.Cascade{Booking: b, ReserveSeat: reserve}, nil
	}
}

func TestRequestRepo_CreateRequest(t *testing.T) {
	repo, mock := setupRequestRepoTest(t)
	mock.ExpectExec("^INSERT INTO requests").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateRequest(context.Background(), &models.Request{ID: "q-1", Status: models.RequestStatusPending})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_List(t *testing.T) {
	repo, mock := setupRequestRepoTest(t)
	mock.ExpectQuery(`^SELECT (.+) FROM requests WHERE driver_id = \$1 ORDER BY created_at`).
		WithArgs("d-1").
		WillReturnRows(requestRows("pending"))
	mock.ExpectQuery(`^SELECT (.+) FROM requests WHERE passenger_id = \$1`).
		WithArgs("s-1").
		WillReturnError(errors.New("connection reset"))

	list, err := repo.ListRequestsByDriver(context.Background(), "d-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RequestStatusPending, list[0].Status)

	_, err = repo.ListRequestsByPassenger(context.Background(), "s-1")
	assert.Error(t, err)
}

func TestRequestRepo_UpdateRequest(t *testing.T) {
	t.Run("Accept inserts booking without touching the ride", func(t *testing.T) {
		repo, mock := setupRequestRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`^SELECT (.+) FROM requests WHERE id = \$1 FOR UPDATE`).
			WithArgs("q-1").
			WillReturnRows(requestRows("pending"))
		mock.ExpectExec(`^UPDATE requests SET status = \$2, pickup_address = \$3`).
			WithArgs("q-1", "accepted", "Main gate", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^INSERT INTO bookings").
			WithArgs("b-1", "r-1", "q-1", "s-1", sqlmock.AnyArg(), sqlmock.AnyArg(),
				"d-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				"Main gate", sqlmock.AnyArg(), sqlmock.AnyArg(), "pending",
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req, booking, err := repo.UpdateRequest(context.Background(), "q-1", acceptRequest(false))
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusAccepted, req.Status)
		assert.Equal(t, "q-1", booking.RequestID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Accept with seat reservation", func(t *testing.T) {
		repo, mock := setupRequestRepoTest(t)
		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM requests WHERE id = \$1 FOR UPDATE`).WithArgs("q-1").WillReturnRows(requestRows("pending"))
		mock.ExpectExec(`^UPDATE requests`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`FROM rides WHERE id = \$1 FOR UPDATE`).WithArgs("r-1").WillReturnRows(
			sqlmock.NewRows(rideRowColumns).AddRow(
				"r-1", "d-1", "Omar", "Corolla", "SL-123", "white", 4,
				"Hargeisa", "Berbera", 9.5624, 44.0770, 10.4396, 45.0143, "",
				"sc6e4b", now, 2, 5.0, "available", "{}", now, now))
		mock.ExpectExec(`^UPDATE rides SET`).
			WithArgs("r-1", sqlmock.AnyArg(), 1, sqlmock.AnyArg(), "available",
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, _, err := repo.UpdateRequest(context.Background(), "q-1", acceptRequest(true))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booking insert failure rolls back the request", func(t *testing.T) {
		repo, mock := setupRequestRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("q-1").WillReturnRows(requestRows("pending"))
		mock.ExpectExec(`^UPDATE requests`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^INSERT INTO bookings").WillReturnError(errors.New("duplicate key value"))
		mock.ExpectRollback()

		_, _, err := repo.UpdateRequest(context.Background(), "q-1", acceptRequest(false))
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reject writes no booking", func(t *testing.T) {
		repo, mock := setupRequestRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("q-1").WillReturnRows(requestRows("pending"))
		mock.ExpectExec(`^UPDATE requests`).
			WithArgs("q-1", "rejected", "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, booking, err := repo.UpdateRequest(context.Background(), "q-1", func(r *models.Request) (*requests.Cascade, error) {
			r.Status = models.RequestStatusRejected
			return nil, nil
		})
		require.NoError(t, err)
		assert.Nil(t, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := setupRequestRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, _, err := repo.UpdateRequest(context.Background(), "missing", acceptRequest(false))
		assert.ErrorIs(t, err, models.ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
