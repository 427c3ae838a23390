package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/models"
)

// PingInfo is the body of GET /ping
type PingInfo struct {
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	Uptime      string    `json:"uptime"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler reports which build of the API is answering
func NewPingHandler(app models.AppConfig) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	started := time.Now()

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, PingInfo{
			Service:     app.Name,
			Version:     app.Version,
			Environment: app.Environment,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			Uptime:      time.Since(started).Round(time.Second).String(),
			ServerTime:  time.Now().UTC(),
		})
	}
}

// RegisterHealthEndpoints mounts /ping, the liveness probes /health and
// /healthz, and /ready which runs every checker of svc. A nil svc always
// reports ready.
func RegisterHealthEndpoints(e *echo.Echo, app models.AppConfig, svc *Service) {
	alive := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	e.GET("/ping", NewPingHandler(app))
	e.GET("/health", alive)
	e.GET("/healthz", alive)
	e.GET("/ready", NewReadyHandler(app.Name, svc))
}
