package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"github.com/unirides/unirides/services/requests"
)

// RequestHandler handles ride request HTTP requests
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var request models.Request
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if request.PassengerID == "" {
		request.PassengerID = middleware.CurrentUserID(c)
	}

	created, err := h.requestUC.CreateRequest(c.Request().Context(), &request)
	if err != nil {
		return h.fail(c, "Failed to create request", err)
	}

	middleware.AddAttribute(c, "request.id", created.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Request created successfully", created)
}

// GetDriverRequests handles GET /drivers/:id/requests
func (h *RequestHandler) GetDriverRequests(c echo.Context) error {
	list, err := h.requestUC.GetRequests(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Failed to list driver requests", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", list)
}

// GetPassengerRequests handles GET /passengers/:id/requests
func (h *RequestHandler) GetPassengerRequests(c echo.Context) error {
	list, err := h.requestUC.GetRequestsForPassenger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Failed to list passenger requests", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", list)
}

// UpdateRequest handles PATCH /requests/:id
func (h *RequestHandler) UpdateRequest(c echo.Context) error {
	var update models.RequestUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	request, err := h.requestUC.UpdateRequest(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return h.fail(c, "Failed to update request", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", request)
}

func (h *RequestHandler) fail(c echo.Context, msg string, err error) error {
	if utils.ErrorStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
		middleware.NoticeError(c, err)
	}
	return utils.StoreErrorResponse(c, err)
}
