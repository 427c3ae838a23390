package requests

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unirides/unirides/services/requests RequestRepo

// Cascade is the booking written together with a request change
type Cascade struct {
	Booking *models.Booking
	// ReserveSeat also takes a seat on the booking's ride
	ReserveSeat bool
}

// RequestRepo defines ride request data access
type RequestRepo interface {
	CreateRequest(ctx context.Context, request *models.Request) error
	ListRequestsByDriver(ctx context.Context, driverID string) ([]*models.Request, error)
	ListRequestsByPassenger(ctx context.Context, passengerID string) ([]*models.Request, error)
	// UpdateRequest loads the request and lets apply change it. When apply
	// returns a cascade its booking is inserted in the same transaction;
	// any failure leaves both tables untouched. The inserted booking is
	// returned, or nil.
	UpdateRequest(ctx context.Context, id string, apply func(*models.Request) (*Cascade, error)) (*models.Request, *models.Booking, error)
}
