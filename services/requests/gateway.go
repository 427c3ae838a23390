package requests

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/unirides/unirides/services/requests RequestGW

// RequestGW publishes request events and the bookings they create
type RequestGW interface {
	PublishRequestCreated(ctx context.Context, request *models.Request) error
	PublishRequestUpdated(ctx context.Context, request *models.Request) error
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
}
