package rides

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/unirides/unirides/services/rides RideGW

// RideGW publishes ride events
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideUpdated(ctx context.Context, ride *models.Ride) error
	PublishRideDeleted(ctx context.Context, rideID string) error
}
