package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/services/bookings/handler/http"
)

// Handler registers the booking routes
type Handler struct {
	bookingHandler *http.BookingHandler
}

// NewHandler creates the bookings route handler
func NewHandler(bookingHandler *http.BookingHandler) *Handler {
	return &Handler{bookingHandler: bookingHandler}
}

// RegisterRoutes mounts /bookings behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	bookingsGroup := e.Group("/bookings", auth...)
	bookingsGroup.POST("", h.bookingHandler.CreateBooking)
	bookingsGroup.GET("", h.bookingHandler.GetBookings)
	bookingsGroup.PATCH("/:id", h.bookingHandler.UpdateBooking)
}
