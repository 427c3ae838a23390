package requests

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unirides/unirides/services/requests RequestUC

// RequestUC defines the ride request business logic
type RequestUC interface {
	CreateRequest(ctx context.Context, request *models.Request) (*models.Request, error)
	GetRequests(ctx context.Context, driverID string) ([]*models.Request, error)
	GetRequestsForPassenger(ctx context.Context, passengerID string) ([]*models.Request, error)
	UpdateRequest(ctx context.Context, id string, update models.RequestUpdate) (*models.Request, error)
}
