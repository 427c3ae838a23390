package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/location"
)

const (
	routeSegments         = 10
	defaultSpeedKmh       = 30.0
	minutesPerHour        = 60.0
	defaultAccuracyMeters = 10.0
)

// LocationUC implements location.LocationUC
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, locationRepo location.LocationRepo) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
	}
}

// GetCurrentLocation returns the last reported location of the user or the
// configured default position
func (uc *LocationUC) GetCurrentLocation(ctx context.Context, userID string) (*models.Location, error) {
	if userID != "" {
		loc, err := uc.locationRepo.GetLastLocation(ctx, userID)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			return loc, nil
		}
	}

	accuracy := uc.cfg.Location.DefaultAccuracy
	if accuracy == 0 {
		accuracy = defaultAccuracyMeters
	}
	return &models.Location{
		Latitude:  uc.cfg.Location.DefaultLat,
		Longitude: uc.cfg.Location.DefaultLng,
		Accuracy:  accuracy,
	}, nil
}

// UpdateCurrentLocation stores a position reported by the user
func (uc *LocationUC) UpdateCurrentLocation(ctx context.Context, userID string, loc *models.Location) (*models.Location, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}
	if !utils.ValidCoordinates(models.Coordinates{Lat: loc.Latitude, Lng: loc.Longitude}) {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}
	if loc.Accuracy < 0 {
		return nil, fmt.Errorf("%w: accuracy must not be negative", models.ErrValidation)
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = models.Now()
	}

	if err := uc.locationRepo.StoreLocation(ctx, userID, *loc); err != nil {
		return nil, err
	}

	logger.Debug("Location updated",
		logger.String("user_id", userID),
		logger.Float64("lat", loc.Latitude),
		logger.Float64("lng", loc.Longitude))
	return loc, nil
}

// GetRoute estimates a straight-line route between two points
func (uc *LocationUC) GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteEstimate, error) {
	if !utils.ValidCoordinates(req.From) || !utils.ValidCoordinates(req.To) {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}

	speed := uc.cfg.Location.AverageSpeedKmh
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	distance := utils.CalculateDistance(req.From, req.To)
	return &models.RouteEstimate{
		Distance:    round2(distance),
		Duration:    round2(distance / speed * minutesPerHour),
		Coordinates: utils.Interpolate(req.From, req.To, routeSegments),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
