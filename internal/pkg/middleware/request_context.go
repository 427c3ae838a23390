package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/requestcontext"
)

// RequestContextMiddleware attaches request and trace ids to the request
// context and echoes them back as response headers
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rc := requestcontext.New(req, serviceName)
			c.SetRequest(req.WithContext(requestcontext.With(req.Context(), rc)))

			h := c.Response().Header()
			h.Set(echo.HeaderXRequestID, rc.RequestID)
			h.Set(requestcontext.HeaderTraceID, rc.TraceID)

			return next(c)
		}
	}
}
