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
	bookingsrepo "github.com/unirides/unirides/services/bookings/repository"
	"github.com/unirides/unirides/services/requests"
	ridesrepo "github.com/unirides/unirides/services/rides/repository"
)

const requestColumns = `id, ride_id, passenger_id, passenger_name, passenger_phone,
	driver_id, driver_name, route_from, route_to, from_lat, from_lng, to_lat, to_lng,
	pickup_address, departure_time, price, status, created_at, updated_at`

// RequestRepo stores ride requests in PostgreSQL
type RequestRepo struct {
	db *sqlx.DB
}

// NewRequestRepo creates a new request repository
func NewRequestRepo(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

type requestRow struct {
	ID             string    `db:"id"`
	RideID         string    `db:"ride_id"`
	PassengerID    string    `db:"passenger_id"`
	PassengerName  string    `db:"passenger_name"`
	PassengerPhone string    `db:"passenger_phone"`
	DriverID       string    `db:"driver_id"`
	DriverName     string    `db:"driver_name"`
	RouteFrom      string    `db:"route_from"`
	RouteTo        string    `db:"route_to"`
	FromLat        float64   `db:"from_lat"`
	FromLng        float64   `db:"from_lng"`
	ToLat          float64   `db:"to_lat"`
	ToLng          float64   `db:"to_lng"`
	PickupAddress  string    `db:"pickup_address"`
	DepartureTime  time.Time `db:"departure_time"`
	Price          float64   `db:"price"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row requestRow) toModel() *models.Request {
	return &models.Request{
		ID:             row.ID,
		RideID:         row.RideID,
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
		Status:        models.RequestStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// CreateRequest inserts a request
func (r *RequestRepo) CreateRequest(ctx context.Context, request *models.Request) error {
	defer nrpkg.PostgresSegment(ctx, "requests", "INSERT").End()

	query := `INSERT INTO requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		request.ID, request.RideID,
		request.PassengerID, request.PassengerName, request.PassengerPhone,
		request.DriverID, request.DriverName,
		request.Route.From, request.Route.To,
		request.Route.FromCoords.Lat, request.Route.FromCoords.Lng,
		request.Route.ToCoords.Lat, request.Route.ToCoords.Lng,
		request.Route.PickupAddress,
		request.DepartureTime, request.Price, string(request.Status),
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

// ListRequestsByDriver returns the requests addressed to a driver
func (r *RequestRepo) ListRequestsByDriver(ctx context.Context, driverID string) ([]*models.Request, error) {
	return r.list(ctx, `driver_id = $1`, driverID)
}

// ListRequestsByPassenger returns the requests sent by a passenger
func (r *RequestRepo) ListRequestsByPassenger(ctx context.Context, passengerID string) ([]*models.Request, error) {
	return r.list(ctx, `passenger_id = $1`, passengerID)
}

func (r *RequestRepo) list(ctx context.Context, where string, arg string) ([]*models.Request, error) {
	defer nrpkg.PostgresSegment(ctx, "requests", "SELECT").End()

	var rows []requestRow
	query := `SELECT ` + requestColumns + ` FROM requests WHERE ` + where + ` ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	out := make([]*models.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// UpdateRequest locks the request, applies the change and writes it back
// together with the cascaded booking in one transaction
func (r *RequestRepo) UpdateRequest(ctx context.Context, id string, apply func(*models.Request) (*requests.Cascade, error)) (*models.Request, *models.Booking, error) {
	defer nrpkg.PostgresSegment(ctx, "requests", "UPDATE").End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row requestRow
	err = tx.GetContext(ctx, &row, `SELECT `+requestColumns+` FROM requests WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, models.ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock request: %w", err)
	}

	request := row.toModel()
	cascade, err := apply(request)
	if err != nil {
		return nil, nil, err
	}
	request.ID = id

	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $2, pickup_address = $3, updated_at = $4 WHERE id = $1`,
		id, string(request.Status), request.Route.PickupAddress, request.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update request: %w", err)
	}

	var booking *models.Booking
	if cascade != nil {
		if err := bookingsrepo.InsertBookingTx(ctx, tx, cascade.Booking); err != nil {
			return nil, nil, err
		}
		if cascade.ReserveSeat {
			if _, err := ridesrepo.ReserveSeatTx(ctx, tx, cascade.Booking.RideID, cascade.Booking.PassengerID); err != nil {
				return nil, nil, err
			}
		}
		booking = cascade.Booking
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit request update: %w", err)
	}
	return request, booking, nil
}
