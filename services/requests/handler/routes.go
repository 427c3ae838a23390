package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/services/requests/handler/http"
)

// Handler registers the ride request routes
type Handler struct {
	requestHandler *http.RequestHandler
}

// NewHandler creates the requests route handler
func NewHandler(requestHandler *http.RequestHandler) *Handler {
	return &Handler{requestHandler: requestHandler}
}

// RegisterRoutes mounts the request routes behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	requestsGroup := e.Group("/requests", auth...)
	requestsGroup.POST("", h.requestHandler.CreateRequest)
	requestsGroup.PATCH("/:id", h.requestHandler.UpdateRequest)

	e.GET("/drivers/:id/requests", h.requestHandler.GetDriverRequests, auth...)
	e.GET("/passengers/:id/requests", h.requestHandler.GetPassengerRequests, auth...)
}
