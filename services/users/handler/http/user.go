package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/users"
)

// UserHandler serves account lookups
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}
