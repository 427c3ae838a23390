package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/location"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// GetCurrentLocation handles GET /location/current
func (h *LocationHandler) GetCurrentLocation(c echo.Context) error {
	loc, err := h.locationUC.GetCurrentLocation(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to get current location", logger.Err(err))
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", loc)
}

// UpdateCurrentLocation handles PUT /location/current
func (h *LocationHandler) UpdateCurrentLocation(c echo.Context) error {
	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	updated, err := h.locationUC.UpdateCurrentLocation(c.Request().Context(), middleware.CurrentUserID(c), &loc)
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Failed to update location", logger.Err(err))
		}
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", updated)
}

// GetRoute handles POST /location/route
func (h *LocationHandler) GetRoute(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	route, err := h.locationUC.GetRoute(c.Request().Context(), req)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route calculated successfully", route)
}
