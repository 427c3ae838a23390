package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/services/users/handler/http"
)

// Handler registers the account routes
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates the users route handler
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes mounts the public /auth group, guarded by limit, and
// /users behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, limit ...echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", limit...)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/register", h.authHandler.Register)

	usersGroup := e.Group("/users", auth)
	usersGroup.GET("/:id", h.userHandler.GetUser)
}
