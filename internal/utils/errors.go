package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/models"
)

var notFoundMessages = map[error]string{
	models.ErrUserNotFound:    "User not found",
	models.ErrRideNotFound:    "Ride not found",
	models.ErrBookingNotFound: "Booking not found",
	models.ErrRequestNotFound: "Request not found",
}

// ErrorStatus maps a store error to its HTTP status code
func ErrorStatus(err error) int {
	for target := range notFoundMessages {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUserExists), errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidUserType):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// StoreErrorResponse writes the error envelope for err. Internal errors
// are not echoed to the client.
func StoreErrorResponse(c echo.Context, err error) error {
	status := ErrorStatus(err)
	switch status {
	case http.StatusNotFound:
		for target, msg := range notFoundMessages {
			if errors.Is(err, target) {
				return NotFoundResponse(c, msg)
			}
		}
	case http.StatusUnauthorized:
		return UnauthorizedResponse(c, "Invalid credentials")
	case http.StatusConflict:
		if errors.Is(err, models.ErrUserExists) {
			return ConflictResponse(c, "User already exists")
		}
		return ConflictResponse(c, err.Error())
	case http.StatusBadRequest:
		return BadRequestResponse(c, err.Error())
	}
	return InternalServerErrorResponse(c, "Internal server error")
}
