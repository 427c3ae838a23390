package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
)

func TestStoreErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"ride not found", fmt.Errorf("update ride: %w", models.ErrRideNotFound), http.StatusNotFound, "Ride not found"},
		{"booking not found", models.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		{"request not found", models.ErrRequestNotFound, http.StatusNotFound, "Request not found"},
		{"user not found", models.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"user exists", models.ErrUserExists, http.StatusConflict, "User already exists"},
		{"invalid transition", fmt.Errorf("%w: accepted -> pending", models.ErrInvalidTransition), http.StatusConflict, "invalid status transition: accepted -> pending"},
		{"validation", fmt.Errorf("%w: email is required", models.ErrValidation), http.StatusBadRequest, "validation failed: email is required"},
		{"invalid user type", models.ErrInvalidUserType, http.StatusBadRequest, "invalid user type"},
		{"internal", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, StoreErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, ErrorStatus(tt.err))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["error"])
			assert.Equal(t, float64(tt.wantStatus), body["code"])
		})
	}
}
