package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/unirides/unirides/internal/pkg/models"
	nrpkg "github.com/unirides/unirides/internal/pkg/newrelic"
)

const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, name, phone, user_type, created_at,
	student_id, university, driver_id,
	vehicle_model, vehicle_plate, vehicle_color, vehicle_capacity`

// UserRepo stores users in PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

type userRow struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	PasswordHash    string    `db:"password_hash"`
	Name            string    `db:"name"`
	Phone           string    `db:"phone"`
	UserType        string    `db:"user_type"`
	CreatedAt       time.Time `db:"created_at"`
	StudentID       string    `db:"student_id"`
	University      string    `db:"university"`
	DriverID        string    `db:"driver_id"`
	VehicleModel    string    `db:"vehicle_model"`
	VehiclePlate    string    `db:"vehicle_plate"`
	VehicleColor    string    `db:"vehicle_color"`
	VehicleCapacity int       `db:"vehicle_capacity"`
}

func (row userRow) toModel() *models.User {
	user := &models.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Name:         row.Name,
		Phone:        row.Phone,
		UserType:     models.UserType(row.UserType),
		CreatedAt:    row.CreatedAt,
		StudentID:    row.StudentID,
		University:   row.University,
		DriverID:     row.DriverID,
	}
	if user.UserType == models.UserTypeDriver {
		user.Vehicle = &models.Vehicle{
			Model:    row.VehicleModel,
			Plate:    row.VehiclePlate,
			Color:    row.VehicleColor,
			Capacity: row.VehicleCapacity,
		}
	}
	return user
}

// CreateUser inserts a user. A duplicate email maps to models.ErrUserExists.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	defer nrpkg.PostgresSegment(ctx, "users", "INSERT").End()

	var vehicle models.Vehicle
	if user.Vehicle != nil {
		vehicle = *user.Vehicle
	}

	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
		string(user.UserType), user.CreatedAt,
		user.StudentID, user.University, user.DriverID,
		vehicle.Model, vehicle.Plate, vehicle.Color, vehicle.Capacity,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail finds a user by its normalized email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetUserByID finds a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	defer nrpkg.PostgresSegment(ctx, "users", "SELECT").End()

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return row.toModel(), nil
}
