package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/rides/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestGetAvailableRides(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		mockSetup  func(uc *mocks.MockRideUC)
		wantStatus int
	}{
		{
			name:   "No filter",
			target: "/rides",
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().GetAvailableRides(gomock.Any(), models.RideFilter{}).
					Return([]*models.Ride{{ID: "r-1"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Near filter",
			target: "/rides?lat=9.5624&lng=44.077",
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().GetAvailableRides(gomock.Any(), models.RideFilter{Near: &models.Coordinates{Lat: 9.5624, Lng: 44.077}}).
					Return([]*models.Ride{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Bad lat",
			target:     "/rides?lat=north&lng=44",
			mockSetup:  func(uc *mocks.MockRideUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Missing lng",
			target:     "/rides?lat=9.5",
			mockSetup:  func(uc *mocks.MockRideUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Store failure",
			target: "/rides",
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().GetAvailableRides(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRideUC := mocks.NewMockRideUC(ctrl)
			tc.mockSetup(mockRideUC)
			handler := NewRideHandler(mockRideUC)

			c, rec := newContext(http.MethodGet, tc.target, "")
			require.NoError(t, handler.GetAvailableRides(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCreateRide(t *testing.T) {
	t.Run("Driver defaults to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRideUC := mocks.NewMockRideUC(ctrl)
		handler := NewRideHandler(mockRideUC)

		mockRideUC.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
				assert.Equal(t, "d-1", ride.DriverID)
				assert.Equal(t, "Berbera", ride.Route.To)
				ride.ID = "r-1"
				ride.Status = models.RideStatusAvailable
				return ride, nil
			})

		c, rec := newContext(http.MethodPost, "/rides",
			`{"route":{"from":"Hargeisa","to":"Berbera"},"vehicle":{"capacity":4},"price":5}`)
		c.Set(constants.ContextUserID, "d-1")

		require.NoError(t, handler.CreateRide(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "r-1", data["id"])
		assert.Equal(t, "available", data["status"])
	})

	t.Run("Validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRideUC := mocks.NewMockRideUC(ctrl)
		handler := NewRideHandler(mockRideUC)
		mockRideUC.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
			Return(nil, models.ErrValidation)

		c, rec := newContext(http.MethodPost, "/rides", `{}`)
		require.NoError(t, handler.CreateRide(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewRideHandler(mocks.NewMockRideUC(ctrl))
		c, rec := newContext(http.MethodPost, "/rides", `{"price":`)
		require.NoError(t, handler.CreateRide(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decode(t, rec)["error"])
	})
}

func TestGetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)
	mockRideUC.EXPECT().GetRide(gomock.Any(), "missing").Return(nil, models.ErrRideNotFound)

	c, rec := newContext(http.MethodGet, "/rides/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Ride not found", response["error"])
}

func TestUpdateRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	zero := 0
	mockRideUC.EXPECT().UpdateRide(gomock.Any(), "r-1", models.RideUpdate{AvailableSeats: &zero}).
		Return(&models.Ride{ID: "r-1", Status: models.RideStatusFull}, nil)

	c, rec := newContext(http.MethodPatch, "/rides/r-1", `{"available_seats":0}`)
	c.SetParamNames("id")
	c.SetParamValues("r-1")

	require.NoError(t, handler.UpdateRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "full", data["status"])
}

func TestDeleteRide(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Deleted", wantStatus: http.StatusOK},
		{name: "Not found", err: models.ErrRideNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRideUC := mocks.NewMockRideUC(ctrl)
			handler := NewRideHandler(mockRideUC)
			mockRideUC.EXPECT().DeleteRide(gomock.Any(), "r-1").Return(tc.err)

			c, rec := newContext(http.MethodDelete, "/rides/r-1", "")
			c.SetParamNames("id")
			c.SetParamValues("r-1")

			require.NoError(t, handler.DeleteRide(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
