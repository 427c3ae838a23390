package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/unirides/unirides/internal/pkg/models"
	nrpkg "github.com/unirides/unirides/internal/pkg/newrelic"
	ridesrepo "github.com/unirides/unirides/services/rides/repository"
)

const bookingColumns = `id, ride_id, request_id, passenger_id, passenger_name, passenger_phone,
	driver_id, driver_name, route_from, route_to, from_lat, from_lng, to_lat, to_lng,
	pickup_address, departure_time, price, status, created_at, updated_at`

// BookingRepo stores bookings in PostgreSQL
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingRow struct {
	ID             string         `db:"id"`
	RideID         string         `db:"ride_id"`
	RequestID      sql.NullString `db:"request_id"`
	PassengerID    string         `db:"passenger_id"`
	PassengerName  string         `db:"passenger_name"`
	PassengerPhone string         `db:"passenger_phone"`
	DriverID       string         `db:"driver_id"`
	DriverName     string         `db:"driver_name"`
	RouteFrom      string         `db:"route_from"`
	RouteTo        string         `db:"route_to"`
	FromLat        float64        `db:"from_lat"`
	FromLng        float64        `db:"from_lng"`
	ToLat          float64        `db:"to_lat"`
	ToLng          float64        `db:"to_lng"`
	PickupAddress  string         `db:"pickup_address"`
	DepartureTime  time.Time      `db:"departure_time"`
	Price          float64        `db:"price"`
	Status         string         `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (row bookingRow) toModel() *models.Booking {
	return &models.Booking{
		ID:             row.ID,
		RideID:         row.RideID,
		RequestID:      row.RequestID.String,
		PassengerID:    row.PassengerID,
		PassengerName:  row.PassengerName,
		PassengerPhone: row.PassengerPhone,
		DriverID:       row.DriverID,
		DriverName:     row.DriverName,
		Route: models.Route{
			From:          row.RouteFrom,
			To:            row.RouteTo,
			FromCoords:    models.Coordinates{Lat: row.FromLat, Lng: row.FromLng},
			ToCoords:      models.Coordinates{Lat: row.ToLat, Lng: row.ToLng},
			PickupAddress: row.PickupAddress,
		},
		DepartureTime: row.DepartureTime,
		Price:         row.Price,
		Status:        models.BookingStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// CreateBooking inserts the booking and reserves a seat on its ride in one
// transaction
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Ride, error) {
	defer nrpkg.PostgresSegment(ctx, "bookings", "INSERT").End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := InsertBookingTx(ctx, tx, booking); err != nil {
		return nil, err
	}
	ride, err := ridesrepo.ReserveSeatTx(ctx, tx, booking.RideID, booking.PassengerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}
	return ride, nil
}

// ListBookingsByPassenger returns the bookings of a passenger
func (r *BookingRepo) ListBookingsByPassenger(ctx context.Context, passengerID string) ([]*models.Booking, error) {
	return r.list(ctx, `passenger_id = $1`, passengerID)
}

// ListBookingsByDriver returns the bookings on a driver's rides
func (r *BookingRepo) ListBookingsByDriver(ctx context.Context, driverID string) ([]*models.Booking, error) {
	return r.list(ctx, `driver_id = $1`, driverID)
}

func (r *BookingRepo) list(ctx context.Context, where string, arg string) ([]*models.Booking, error) {
	defer nrpkg.PostgresSegment(ctx, "bookings", "SELECT").End()

	var rows []bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + where + ` ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	out := make([]*models.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// UpdateBooking locks the booking row, applies the change and writes it back
func (r *BookingRepo) UpdateBooking(ctx context.Context, id string, apply func(*models.Booking) error) (*models.Booking, error) {
	defer nrpkg.PostgresSegment(ctx, "bookings", "UPDATE").End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row bookingRow
	err = tx.GetContext(ctx, &row, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	booking := row.toModel()
	if err := apply(booking); err != nil {
		return nil, err
	}
	booking.ID = id

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(booking.Status), booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking update: %w", err)
	}
	return booking, nil
}

// InsertBookingTx inserts a booking inside tx. An empty RequestID is
// stored as NULL.
func InsertBookingTx(ctx context.Context, tx *sqlx.Tx, booking *models.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20)`

	requestID := sql.NullString{String: booking.RequestID, Valid: booking.RequestID != ""}
	_, err := tx.ExecContext(ctx, query,
		booking.ID, booking.RideID, requestID,
		booking.PassengerID, booking.PassengerName, booking.PassengerPhone,
		booking.DriverID, booking.DriverName,
		booking.Route.From, booking.Route.To,
		booking.Route.FromCoords.Lat, booking.Route.FromCoords.Lng,
		booking.Route.ToCoords.Lat, booking.Route.ToCoords.Lng,
		booking.Route.PickupAddress,
		booking.DepartureTime, booking.Price, string(booking.Status),
		booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}
