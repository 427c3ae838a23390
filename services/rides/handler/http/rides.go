package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/rides"
)

// RideHandler handles ride HTTP requests
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// GetAvailableRides handles GET /rides
func (h *RideHandler) GetAvailableRides(c echo.Context) error {
	var filter models.RideFilter

	latParam, lngParam := c.QueryParam("lat"), c.QueryParam("lng")
	if latParam != "" || lngParam != "" {
		lat, err := strconv.ParseFloat(latParam, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid lat parameter")
		}
		lng, err := strconv.ParseFloat(lngParam, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid lng parameter")
		}
		filter.Near = &models.Coordinates{Lat: lat, Lng: lng}
	}

	list, err := h.rideUC.GetAvailableRides(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, "Failed to list rides", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c echo.Context) error {
	var ride models.Ride
	if err := c.Bind(&ride); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if ride.DriverID == "" {
		ride.DriverID = middleware.CurrentUserID(c)
	}

	created, err := h.rideUC.CreateRide(c.Request().Context(), &ride)
	if err != nil {
		return h.fail(c, "Failed to create ride", err)
	}

	middleware.AddAttribute(c, "ride.id", created.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", created)
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c echo.Context) error {
	ride, err := h.rideUC.GetRide(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Failed to get ride", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// UpdateRide handles PATCH /rides/:id
func (h *RideHandler) UpdateRide(c echo.Context) error {
	var update models.RideUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return h.fail(c, "Failed to update ride", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// DeleteRide handles DELETE /rides/:id
func (h *RideHandler) DeleteRide(c echo.Context) error {
	if err := h.rideUC.DeleteRide(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, "Failed to delete ride", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted successfully", nil)
}

func (h *RideHandler) fail(c echo.Context, msg string, err error) error {
	if utils.ErrorStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
		middleware.NoticeError(c, err)
	}
	return utils.StoreErrorResponse(c, err)
}
