package http

import (
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
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/users/mocks"
)

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"amina@uoh.edu","password":"secret123","user_type":"student"}`)

	mockUserUC.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Email: "amina@uoh.edu", Password: "secret123", UserType: models.UserTypeStudent}).
		Return(&models.AuthResponse{
			User:  &models.User{ID: "u-1", Email: "amina@uoh.edu", PasswordHash: "hash", UserType: models.UserTypeStudent},
			Token: "token",
		}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "u-1", user["id"])
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, user, "password")
	assert.Equal(t, "token", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"amina@uoh.edu","password":"nope","user_type":"student"}`)

	mockUserUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidCredentials)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])
}

func TestLogin_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockUserUC(ctrl))
	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":`)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{name: "Success", wantStatus: http.StatusCreated},
		{name: "Duplicate", ucErr: models.ErrUserExists, wantStatus: http.StatusConflict, wantError: "User already exists"},
		{name: "Validation", ucErr: errors.Join(models.ErrValidation, errors.New("name is required")), wantStatus: http.StatusBadRequest},
		{name: "Internal", ucErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserUC := mocks.NewMockUserUC(ctrl)
			authHandler := NewAuthHandler(mockUserUC)

			c, rec := newJSONContext(http.MethodPost, "/auth/register",
				`{"email":"a@u.edu","password":"secret123","name":"A","user_type":"student"}`)

			if tc.ucErr != nil {
				mockUserUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.ucErr)
			} else {
				mockUserUC.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&models.AuthResponse{User: &models.User{ID: "u-1"}, Token: "t"}, nil)
			}

			assert.NoError(t, authHandler.Register(c))
			assert.Equal(t, tc.wantStatus, rec.Code)

			response := decode(t, rec)
			if tc.ucErr == nil {
				assert.Equal(t, true, response["success"])
				return
			}
			assert.Equal(t, false, response["success"])
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, response["error"])
			}
		})
	}
}
