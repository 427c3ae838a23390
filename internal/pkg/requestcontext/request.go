// Package requestcontext carries the identifiers of an incoming request
// through context.Context so log lines from every layer can be joined.
package requestcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderTraceID propagates a caller-chosen trace id
const HeaderTraceID = "X-Trace-ID"

type ctxKey struct{}

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	TraceID     string
	ServiceName string
	StartTime   time.Time
}

// New builds the context for r, keeping the caller's request and trace
// ids when it sent them
func New(r *http.Request, serviceName string) *RequestContext {
	return &RequestContext{
		RequestID:   headerOrNew(r, echo.HeaderXRequestID),
		TraceID:     headerOrNew(r, HeaderTraceID),
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

func headerOrNew(r *http.Request, name string) string {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return uuid.New().String()
}

// With returns a copy of ctx carrying rc
func With(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// From returns the request context stored in ctx, or nil
func From(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// RequestID returns the request id stored in ctx, or ""
func RequestID(ctx context.Context) string {
	if rc := From(ctx); rc != nil {
		return rc.RequestID
	}
	return ""
}
