package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicMiddleware starts a transaction per request. A nil app turns it
// into a pass-through.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if app == nil {
			return next
		}
		return func(c echo.Context) error {
			req := c.Request()
			name := req.Method + " " + c.Path()
			txn := app.StartTransaction(name)
			defer txn.End()

			txn.SetWebRequestHTTP(req)
			w := txn.SetWebResponse(c.Response().Writer)
			c.Response().Writer = w

			c.Set("nr_txn", txn)
			c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetUserID sets the user ID attribute for the current transaction
func SetUserID(c echo.Context, userID string) {
	AddAttribute(c, "user.id", userID)
}
