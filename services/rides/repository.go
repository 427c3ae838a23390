package rides

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unirides/unirides/services/rides RideRepo

// RideRepo defines ride data access
type RideRepo interface {
	// ListAvailableRides returns available rides ordered by departure time.
	// A non-empty cells list keeps only rides starting in one of those
	// geohash cells.
	ListAvailableRides(ctx context.Context, cells []string) ([]*models.Ride, error)
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, id string) (*models.Ride, error)
	// UpdateRide loads the ride, lets apply change it and saves it in one
	// step. An error from apply leaves the ride untouched.
	UpdateRide(ctx context.Context, id string, apply func(*models.Ride) error) (*models.Ride, error)
	DeleteRide(ctx context.Context, id string) error
}
