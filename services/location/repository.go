package location

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unirides/unirides/services/location LocationRepo

// LocationRepo defines location data access
type LocationRepo interface {
	StoreLocation(ctx context.Context, userID string, loc models.Location) error
	// GetLastLocation returns nil without an error when nothing is stored
	GetLastLocation(ctx context.Context, userID string) (*models.Location, error)
}
