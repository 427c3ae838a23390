package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/requests"
)

// RequestUC implements requests.RequestUC
type RequestUC struct {
	cfg         *models.Config
	requestRepo requests.RequestRepo
	requestGW   requests.RequestGW
}

// NewRequestUC creates a new request use case
func NewRequestUC(cfg *models.Config, requestRepo requests.RequestRepo, requestGW requests.RequestGW) *RequestUC {
	return &RequestUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		requestGW:   requestGW,
	}
}

// CreateRequest stores a pending request. The ride is not looked up.
func (uc *RequestUC) CreateRequest(ctx context.Context, request *models.Request) (*models.Request, error) {
	switch {
	case strings.TrimSpace(request.RideID) == "":
		return nil, fmt.Errorf("%w: ride_id is required", models.ErrValidation)
	case strings.TrimSpace(request.PassengerID) == "":
		return nil, fmt.Errorf("%w: passenger_id is required", models.ErrValidation)
	case strings.TrimSpace(request.DriverID) == "":
		return nil, fmt.Errorf("%w: driver_id is required", models.ErrValidation)
	}

	now := models.Now()
	request.ID = uuid.New().String()
	request.Status = models.RequestStatusPending
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := uc.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	logger.Info("Ride request created",
		logger.String("request_id", request.ID),
		logger.String("ride_id", request.RideID),
		logger.String("passenger_id", request.PassengerID))

	if err := uc.requestGW.PublishRequestCreated(ctx, request); err != nil {
		logger.Warn("Failed to publish request created event",
			logger.String("request_id", request.ID),
			logger.Err(err))
	}
	return request, nil
}

// GetRequests lists the requests addressed to a driver
func (uc *RequestUC) GetRequests(ctx context.Context, driverID string) ([]*models.Request, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, fmt.Errorf("%w: driver id is required", models.ErrValidation)
	}
	return uc.requestRepo.ListRequestsByDriver(ctx, driverID)
}

// GetRequestsForPassenger lists the requests a passenger sent
func (uc *RequestUC) GetRequestsForPassenger(ctx context.Context, passengerID string) ([]*models.Request, error) {
	if strings.TrimSpace(passengerID) == "" {
		return nil, fmt.Errorf("%w: passenger id is required", models.ErrValidation)
	}
	return uc.requestRepo.ListRequestsByPassenger(ctx, passengerID)
}

// UpdateRequest moves a pending request on. Accepting it creates the
// matching booking in the same transaction.
func (uc *RequestUC) UpdateRequest(ctx context.Context, id string, update models.RequestUpdate) (*models.Request, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown request status %q", models.ErrValidation, *update.Status)
	}

	request, booking, err := uc.requestRepo.UpdateRequest(ctx, id, func(r *models.Request) (*requests.Cascade, error) {
		if update.Status != nil && !r.Status.CanTransition(*update.Status) {
			return nil, fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, r.Status, *update.Status)
		}

		now := models.Now()
		r.Apply(update)
		r.UpdatedAt = now

		if !update.Accepts() {
			return nil, nil
		}
		b := models.BookingFromRequest(r)
		b.ID = uuid.New().String()
		b.Status = models.BookingStatusPending
		b.CreatedAt = now
		b.UpdatedAt = now
		return &requests.Cascade{
			Booking:     b,
			ReserveSeat: uc.cfg.Booking.AcceptReservesSeat,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ride request updated",
		logger.String("request_id", request.ID),
		logger.String("status", string(request.Status)))

	if err := uc.requestGW.PublishRequestUpdated(ctx, request); err != nil {
		logger.Warn("Failed to publish request updated event",
			logger.String("request_id", request.ID),
			logger.Err(err))
	}

	if booking != nil {
		logger.Info("Booking created from accepted request",
			logger.String("booking_id", booking.ID),
			logger.String("request_id", request.ID),
			logger.Bool("seat_reserved", uc.cfg.Booking.AcceptReservesSeat))

		if err := uc.requestGW.PublishBookingCreated(ctx, booking); err != nil {
			logger.Warn("Failed to publish booking created event",
				logger.String("booking_id", booking.ID),
				logger.Err(err))
		}
	}
	return request, nil
}
