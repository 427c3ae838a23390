package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/unirides/unirides/internal/pkg/constants"
	"github.com/unirides/unirides/internal/pkg/requestcontext"
)

// ZapEchoMiddleware logs every request handled by echo
func ZapEchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)

			userIDStr := "anonymous"
			if userID, ok := c.Get(constants.ContextUserID).(string); ok && userID != "" {
				userIDStr = userID
			}
			requestID := requestcontext.RequestID(c.Request().Context())

			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("user_id", userIDStr)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			l.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), userIDStr, requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
