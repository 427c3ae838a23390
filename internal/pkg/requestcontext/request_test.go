package requestcontext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates missing ids", func(t *testing.T) {
		rc := New(httptest.NewRequest(http.MethodGet, "/rides", nil), "unirides-api")
		assert.NotEmpty(t, rc.RequestID)
		assert.NotEmpty(t, rc.TraceID)
		assert.NotEqual(t, rc.RequestID, rc.TraceID)
		assert.Equal(t, "unirides-api", rc.ServiceName)
		assert.False(t, rc.StartTime.IsZero())
	})

	t.Run("keeps caller ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rides", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-1")
		req.Header.Set(HeaderTraceID, "trace-1")

		rc := New(req, "unirides-api")
		assert.Equal(t, "req-1", rc.RequestID)
		assert.Equal(t, "trace-1", rc.TraceID)
	})
}

func TestWithAndFrom(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, From(ctx))
	assert.Empty(t, RequestID(ctx))

	rc := &RequestContext{RequestID: "req-9", TraceID: "trace-9"}
	ctx = With(ctx, rc)
	require.Same(t, rc, From(ctx))
	assert.Equal(t, "req-9", RequestID(ctx))
}
