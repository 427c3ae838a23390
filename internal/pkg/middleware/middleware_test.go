package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/constants"
	jwtpkg "github.com/unirides/unirides/internal/pkg/jwt"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/pkg/requestcontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testJWTConfig = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "unirides"}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJWTAuthMiddleware(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken(&models.User{
		ID:       "user-1",
		Email:    "amina@uoh.edu",
		UserType: models.UserTypeStudent,
	}, testJWTConfig)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantUser: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/rides", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUser, gotType string
			h := JWTAuthMiddleware(testJWTConfig)(func(c echo.Context) error {
				gotUser = CurrentUserID(c)
				gotType, _ = c.Get(constants.ContextUserType).(string)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, gotUser)
				assert.Equal(t, "student", gotType)
			} else {
				body := decodeBody(t, rec)
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("generates ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var rc *requestcontext.RequestContext
		h := RequestContextMiddleware("unirides-api")(func(c echo.Context) error {
			rc = requestcontext.From(c.Request().Context())
			return nil
		})

		require.NoError(t, h(c))
		require.NotNil(t, rc)
		assert.NotEmpty(t, rc.RequestID)
		assert.Equal(t, "unirides-api", rc.ServiceName)
		assert.Equal(t, rc.RequestID, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, rc.TraceID, rec.Header().Get(requestcontext.HeaderTraceID))
	})

	t.Run("reuses incoming ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		req.Header.Set(requestcontext.HeaderTraceID, "trace-456")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := RequestContextMiddleware("unirides-api")(func(c echo.Context) error {
			assert.Equal(t, "trace-456", requestcontext.From(c.Request().Context()).TraceID)
			return nil
		})

		require.NoError(t, h(c))
		assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestNewRelicMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := NewRelicMiddleware(nil)(func(c echo.Context) error {
		called = true
		AddAttribute(c, "ride.id", "r1")
		SetUserID(c, "u1")
		NoticeError(c, assert.AnError)
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{name: "string panic", panicValue: "boom"},
		{name: "error panic", panicValue: assert.AnError},
		{name: "int panic", panicValue: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set("user_id", "user-1")

			h := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			assert.NotPanics(t, func() { _ = h(c) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
		})
	}

	entries := logs.FilterMessage("Panic recovered during request processing").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "user-1", entries[0].ContextMap()["user_id"])
	assert.Contains(t, entries[0].ContextMap()["stack_trace"], "goroutine")
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := echo.New()
	mw := IPRateLimiter(2, time.Minute, client)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/auth/login")
		require.NoError(t, h(c))
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := do()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do().Code)
}

func TestRateLimiterMiddleware_RedisDownLetsRequestThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := IPRateLimiter(1, time.Minute, client)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
