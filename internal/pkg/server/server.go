package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig, components *ShutdownManager) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}

	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
		components:      components,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("Failed to start server", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and then the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.components != nil {
		s.components.Shutdown(ctx)
	}

	s.logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager collects cleanup functions for dependencies
type ShutdownManager struct {
	mu        sync.Mutex
	logger    *logger.ZapLogger
	functions []namedCloser
}

type namedCloser struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function. Functions run in reverse order of registration.
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, namedCloser{name: name, fn: fn})
}

// Shutdown runs every registered function and returns how many failed
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	sm.mu.Lock()
	functions := make([]namedCloser, len(sm.functions))
	copy(functions, sm.functions)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	failed := 0
	for i := len(functions) - 1; i >= 0; i-- {
		if err := functions[i].fn(ctx); err != nil {
			failed++
			sm.logger.Error("Error during component shutdown",
				logger.String("component", functions[i].name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return failed
}
