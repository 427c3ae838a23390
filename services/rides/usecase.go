package rides

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unirides/unirides/services/rides RideUC

// RideUC defines the ride business logic
type RideUC interface {
	GetAvailableRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error)
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, id string) (*models.Ride, error)
	UpdateRide(ctx context.Context, id string, update models.RideUpdate) (*models.Ride, error)
	DeleteRide(ctx context.Context, id string) error
}
