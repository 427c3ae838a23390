package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/database"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/nats"
)

// Checker reports whether a dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// PostgresChecker pings the database
func PostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// RedisChecker pings redis
func RedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(client.Ping)
}

// NATSChecker fails when the connection is down
func NATSChecker(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		conn := client.GetConn()
		if conn == nil || !conn.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}

// Service runs the registered checkers
type Service struct {
	names    []string
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	if _, ok := s.checkers[name]; !ok {
		s.names = append(s.names, name)
	}
	s.checkers[name] = checker
}

// Response is the body of /ready
type Response struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies,omitempty"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs every checker in registration order
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "ready",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}
	if s == nil {
		return response
	}

	for _, name := range s.names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

// NewReadyHandler answers 503 when any dependency is unhealthy
func NewReadyHandler(serviceName string, svc *Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := svc.CheckAll(ctx)
		response.Service = serviceName

		if response.Status != "ready" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	}
}
