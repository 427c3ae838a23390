package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/users"
)

// AuthHandler handles login and registration
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Login failed", logger.Err(err))
			middleware.NoticeError(c, err)
		}
		return utils.StoreErrorResponse(c, err)
	}

	middleware.SetUserID(c, resp.User.ID)
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		if utils.ErrorStatus(err) == http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Registration failed", logger.Err(err))
			middleware.NoticeError(c, err)
		}
		return utils.StoreErrorResponse(c, err)
	}

	middleware.SetUserID(c, resp.User.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}
