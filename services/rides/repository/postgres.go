package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	nrpkg "github.com/unirides/unirides/internal/pkg/newrelic"
)

const rideColumns = `id, driver_id, driver_name,
	vehicle_model, vehicle_plate, vehicle_color, vehicle_capacity,
	route_from, route_to, from_lat, from_lng, to_lat, to_lng, pickup_address,
	from_geohash, departure_time, available_seats, price, status, passengers,
	created_at, updated_at`

// RideRepo stores rides in PostgreSQL
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepo creates a new ride repository
func NewRideRepo(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

type rideRow struct {
	ID              string         `db:"id"`
	DriverID        string         `db:"driver_id"`
	DriverName      string         `db:"driver_name"`
	VehicleModel    string         `db:"vehicle_model"`
	VehiclePlate    string         `db:"vehicle_plate"`
	VehicleColor    string         `db:"vehicle_color"`
	VehicleCapacity int            `db:"vehicle_capacity"`
	RouteFrom       string         `db:"route_from"`
	RouteTo         string         `db:"route_to"`
	FromLat         float64        `db:"from_lat"`
	FromLng         float64        `db:"from_lng"`
	ToLat           float64        `db:"to_lat"`
	ToLng           float64        `db:"to_lng"`
	PickupAddress   string         `db:"pickup_address"`
	FromGeohash     string         `db:"from_geohash"`
	DepartureTime   time.Time      `db:"departure_time"`
	AvailableSeats  int            `db:"available_seats"`
	Price           float64        `db:"price"`
	Status          string         `db:"status"`
	Passengers      pq.StringArray `db:"passengers"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (row rideRow) toModel() *models.Ride {
	passengers := []string(row.Passengers)
	if passengers == nil {
		passengers = []string{}
	}
	return &models.Ride{
		ID:         row.ID,
		DriverID:   row.DriverID,
		DriverName: row.DriverName,
		Vehicle: models.Vehicle{
			Model:    row.VehicleModel,
			Plate:    row.VehiclePlate,
			Color:    row.VehicleColor,
			Capacity: row.VehicleCapacity,
		},
		Route: models.Route{
			From:          row.RouteFrom,
			To:            row.RouteTo,
			FromCoords:    models.Coordinates{Lat: row.FromLat, Lng: row.FromLng},
			ToCoords:      models.Coordinates{Lat: row.ToLat, Lng: row.ToLng},
			PickupAddress: row.PickupAddress,
		},
		FromGeohash:    row.FromGeohash,
		DepartureTime:  row.DepartureTime,
		AvailableSeats: row.AvailableSeats,
		Price:          row.Price,
		Status:         models.RideStatus(row.Status),
		Passengers:     passengers,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// ListAvailableRides returns available rides by departure time
func (r *RideRepo) ListAvailableRides(ctx context.Context, cells []string) ([]*models.Ride, error) {
	defer nrpkg.PostgresSegment(ctx, "rides", "SELECT").End()

	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = $1`
	args := []interface{}{string(models.RideStatusAvailable)}
	if len(cells) > 0 {
		query += ` AND from_geohash = ANY($2)`
		args = append(args, pq.StringArray(cells))
	}
	query += ` ORDER BY departure_time, created_at`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	out := make([]*models.Ride, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// CreateRide inserts a ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	defer nrpkg.PostgresSegment(ctx, "rides", "INSERT").End()

	query := `INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)`

	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.DriverID, ride.DriverName,
		ride.Vehicle.Model, ride.Vehicle.Plate, ride.Vehicle.Color, ride.Vehicle.Capacity,
		ride.Route.From, ride.Route.To,
		ride.Route.FromCoords.Lat, ride.Route.FromCoords.Lng,
		ride.Route.ToCoords.Lat, ride.Route.ToCoords.Lng,
		ride.Route.PickupAddress,
		ride.FromGeohash, ride.DepartureTime, ride.AvailableSeats, ride.Price,
		string(ride.Status), pq.StringArray(ride.Passengers),
		ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide finds a ride by id
func (r *RideRepo) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	defer nrpkg.PostgresSegment(ctx, "rides", "SELECT").End()

	var row rideRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel(), nil
}

// UpdateRide locks the ride row, applies the change and writes it back
func (r *RideRepo) UpdateRide(ctx context.Context, id string, apply func(*models.Ride) error) (*models.Ride, error) {
	defer nrpkg.PostgresSegment(ctx, "rides", "UPDATE").End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ride, err := LockRide(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, models.ErrRideNotFound
	}

	if err := apply(ride); err != nil {
		return nil, err
	}
	ride.ID = id

	if err := saveRide(ctx, tx, ride); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ride update: %w", err)
	}
	return ride, nil
}

// DeleteRide removes a ride
func (r *RideRepo) DeleteRide(ctx context.Context, id string) error {
	defer nrpkg.PostgresSegment(ctx, "rides", "DELETE").End()

	result, err := r.db.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrRideNotFound
	}
	return nil
}

// LockRide selects a ride FOR UPDATE inside tx. It returns nil without an
// error when the ride does not exist.
func LockRide(ctx context.Context, tx *sqlx.Tx, id string) (*models.Ride, error) {
	var row rideRow
	err := tx.GetContext(ctx, &row, `SELECT `+rideColumns+` FROM rides WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock ride: %w", err)
	}
	return row.toModel(), nil
}

// ReserveSeatTx takes a seat on rideID for passengerID inside tx. A
// missing ride is not an error: nil is returned and nothing changes.
func ReserveSeatTx(ctx context.Context, tx *sqlx.Tx, rideID, passengerID string) (*models.Ride, error) {
	ride, err := LockRide(ctx, tx, rideID)
	if err != nil || ride == nil {
		return nil, err
	}

	if !ride.ReserveSeat(passengerID) {
		logger.Warn("Booking ride without free seats",
			logger.String("ride_id", rideID),
			logger.String("passenger_id", passengerID))
	}
	ride.UpdatedAt = models.Now()

	if err := saveRide(ctx, tx, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

func saveRide(ctx context.Context, tx *sqlx.Tx, ride *models.Ride) error {
	query := `UPDATE rides SET
		departure_time = $2, available_seats = $3, price = $4, status = $5,
		route_from = $6, route_to = $7, from_lat = $8, from_lng = $9,
		to_lat = $10, to_lng = $11, pickup_address = $12, from_geohash = $13,
		passengers = $14, updated_at = $15
		WHERE id = $1`

	_, err := tx.ExecContext(ctx, query,
		ride.ID, ride.DepartureTime, ride.AvailableSeats, ride.Price, string(ride.Status),
		ride.Route.From, ride.Route.To,
		ride.Route.FromCoords.Lat, ride.Route.FromCoords.Lng,
		ride.Route.ToCoords.Lat, ride.Route.ToCoords.Lng,
		ride.Route.PickupAddress, ride.FromGeohash,
		pq.StringArray(ride.Passengers), ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	return nil
}
