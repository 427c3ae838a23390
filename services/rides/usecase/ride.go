package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/rides"
)

// RideUC implements rides.RideUC
type RideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(cfg *models.Config, rideRepo rides.RideRepo, rideGW rides.RideGW) *RideUC {
	return &RideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}
}

const defaultGeohashPrecision = 6

func (uc *RideUC) precision() uint {
	if uc.cfg.Location.GeohashPrecision == 0 {
		return defaultGeohashPrecision
	}
	return uc.cfg.Location.GeohashPrecision
}

// GetAvailableRides lists rides that still take passengers, optionally
// only those starting near filter.Near
func (uc *RideUC) GetAvailableRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error) {
	var cells []string
	if filter.Near != nil {
		if !utils.ValidCoordinates(*filter.Near) {
			return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
		}
		cells = utils.NeighborCells(utils.EncodeCoordinates(*filter.Near, uc.precision()))
	}
	return uc.rideRepo.ListAvailableRides(ctx, cells)
}

// CreateRide stores a new ride with an empty passenger list. Seats default
// to the vehicle capacity and a ride without seats starts out full.
func (uc *RideUC) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if ride.AvailableSeats == 0 {
		ride.AvailableSeats = ride.Vehicle.Capacity
	}
	if err := validateRide(ride); err != nil {
		return nil, err
	}

	now := models.Now()
	ride.ID = uuid.New().String()
	ride.Status = models.StatusForSeats(ride.AvailableSeats)
	ride.Passengers = []string{}
	ride.FromGeohash = utils.EncodeCoordinates(ride.Route.FromCoords, uc.precision())
	ride.CreatedAt = now
	ride.UpdatedAt = now

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID),
		logger.String("driver_id", ride.DriverID),
		logger.Int("available_seats", ride.AvailableSeats))

	if err := uc.rideGW.PublishRideCreated(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride created event",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}
	return ride, nil
}

// GetRide returns a single ride
func (uc *RideUC) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, id)
}

// UpdateRide applies the typed patch. id, driver and creation time never change.
func (uc *RideUC) UpdateRide(ctx context.Context, id string, update models.RideUpdate) (*models.Ride, error) {
	if err := validateRideUpdate(update); err != nil {
		return nil, err
	}

	ride, err := uc.rideRepo.UpdateRide(ctx, id, func(r *models.Ride) error {
		if err := r.Apply(update); err != nil {
			return err
		}
		if update.Route != nil {
			r.FromGeohash = utils.EncodeCoordinates(r.Route.FromCoords, uc.precision())
		}
		r.UpdatedAt = models.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ride updated",
		logger.String("ride_id", ride.ID),
		logger.String("status", string(ride.Status)),
		logger.Int("available_seats", ride.AvailableSeats))

	if err := uc.rideGW.PublishRideUpdated(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride updated event",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}
	return ride, nil
}

// DeleteRide removes a ride
func (uc *RideUC) DeleteRide(ctx context.Context, id string) error {
	if err := uc.rideRepo.DeleteRide(ctx, id); err != nil {
		return err
	}

	logger.Info("Ride deleted", logger.String("ride_id", id))

	if err := uc.rideGW.PublishRideDeleted(ctx, id); err != nil {
		logger.Warn("Failed to publish ride deleted event",
			logger.String("ride_id", id),
			logger.Err(err))
	}
	return nil
}

func validateRide(ride *models.Ride) error {
	switch {
	case strings.TrimSpace(ride.DriverID) == "":
		return fmt.Errorf("%w: driver_id is required", models.ErrValidation)
	case strings.TrimSpace(ride.Route.From) == "" || strings.TrimSpace(ride.Route.To) == "":
		return fmt.Errorf("%w: route from and to are required", models.ErrValidation)
	case !utils.ValidCoordinates(ride.Route.FromCoords) || !utils.ValidCoordinates(ride.Route.ToCoords):
		return fmt.Errorf("%w: route coordinates out of range", models.ErrValidation)
	case ride.AvailableSeats < 0:
		return fmt.Errorf("%w: available_seats must not be negative", models.ErrValidation)
	case ride.Price < 0:
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	return nil
}

func validateRideUpdate(u models.RideUpdate) error {
	switch {
	case u.AvailableSeats != nil && *u.AvailableSeats < 0:
		return fmt.Errorf("%w: available_seats must not be negative", models.ErrValidation)
	case u.Price != nil && *u.Price < 0:
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	case u.Status != nil && *u.Status != models.RideStatusAvailable && *u.Status != models.RideStatusFull:
		return fmt.Errorf("%w: unknown ride status %q", models.ErrValidation, *u.Status)
	case u.Route != nil && (!utils.ValidCoordinates(u.Route.FromCoords) || !utils.ValidCoordinates(u.Route.ToCoords)):
		return fmt.Errorf("%w: route coordinates out of range", models.ErrValidation)
	}
	return nil
}
