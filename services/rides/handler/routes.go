package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/services/rides/handler/http"
)

// Handler registers the ride routes
type Handler struct {
	rideHandler *http.RideHandler
}

// NewHandler creates the rides route handler
func NewHandler(rideHandler *http.RideHandler) *Handler {
	return &Handler{rideHandler: rideHandler}
}

// RegisterRoutes mounts /rides behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	ridesGroup := e.Group("/rides", auth...)
	ridesGroup.GET("", h.rideHandler.GetAvailableRides)
	ridesGroup.POST("", h.rideHandler.CreateRide)
	ridesGroup.GET("/:id", h.rideHandler.GetRide)
	ridesGroup.PATCH("/:id", h.rideHandler.UpdateRide)
	ridesGroup.DELETE("/:id", h.rideHandler.DeleteRide)
}
