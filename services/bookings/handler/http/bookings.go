package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/bookings"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var booking models.Booking
	if err := c.Bind(&booking); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if booking.PassengerID == "" {
		booking.PassengerID = middleware.CurrentUserID(c)
	}

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), &booking)
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Failed to create booking", logger.Err(err))
			middleware.NoticeError(c, err)
		}
		return utils.StoreErrorResponse(c, err)
	}

	middleware.AddAttribute(c, "booking.id", created.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", created)
}

// GetBookings handles GET /bookings. user_id and user_type default to the
// caller's token claims.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = middleware.CurrentUserID(c)
	}
	userType := c.QueryParam("user_type")
	if userType == "" {
		userType, _ = c.Get(constants.ContextUserType).(string)
	}

	list, err := h.bookingUC.GetBookings(c.Request().Context(), userID, models.UserType(userType))
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Failed to list bookings", logger.Err(err))
		}
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// UpdateBooking handles PATCH /bookings/:id
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var update models.BookingUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.UpdateBooking(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Failed to update booking", logger.Err(err))
			middleware.NoticeError(c, err)
		}
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", booking)
}
