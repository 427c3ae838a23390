package gateway

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/models"
	natspkg "github.com/unirides/unirides/internal/pkg/nats"
)

// RideGW publishes ride events to NATS
type RideGW struct {
	publisher natspkg.Publisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(publisher natspkg.Publisher) *RideGW {
	return &RideGW{publisher: publisher}
}

// PublishRideCreated publishes ride.created
func (g *RideGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectRideCreated, ride.ID, ride)
}

// PublishRideUpdated publishes ride.updated
func (g *RideGW) PublishRideUpdated(ctx context.Context, ride *models.Ride) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectRideUpdated, ride.ID, ride)
}

// PublishRideDeleted publishes ride.deleted with only the id
func (g *RideGW) PublishRideDeleted(ctx context.Context, rideID string) error {
	return natspkg.PublishEvent(g.publisher, constants.SubjectRideDeleted, rideID, nil)
}
