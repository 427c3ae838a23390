package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/services/location/handler/http"
)

// Handler registers the location routes
type Handler struct {
	locationHandler *http.LocationHandler
}

// NewHandler creates the location route handler
func NewHandler(locationHandler *http.LocationHandler) *Handler {
	return &Handler{locationHandler: locationHandler}
}

// RegisterRoutes mounts /location behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	locationGroup := e.Group("/location", auth...)
	locationGroup.GET("/current", h.locationHandler.GetCurrentLocation)
	locationGroup.PUT("/current", h.locationHandler.UpdateCurrentLocation)
	locationGroup.POST("/route", h.locationHandler.GetRoute)
}
