package location

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unirides/unirides/services/location LocationUC

// LocationUC defines the location business logic
type LocationUC interface {
	GetCurrentLocation(ctx context.Context, userID string) (*models.Location, error)
	UpdateCurrentLocation(ctx context.Context, userID string, loc *models.Location) (*models.Location, error)
	GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteEstimate, error)
}
