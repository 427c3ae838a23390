package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/unirides/unirides/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger instance, falling back to a
// production zap logger when none was set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithFields returns a logger with additional fields using the global logger
func WithFields(fields map[string]interface{}) *zap.Logger {
	return GetGlobalLogger().WithFields(fields)
}

// InfoCtx logs with trace and request correlation taken from ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Info(msg, fields...)
}

// WarnCtx logs with trace and request correlation taken from ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Warn(msg, fields...)
}

// ErrorCtx logs with trace and request correlation taken from ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Error(msg, fields...)
}

func ctxLogger(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
	if rc := requestcontext.From(ctx); rc != nil {
		l = l.With(zap.String("request_id", rc.RequestID), zap.String("trace_id", rc.TraceID))
	}
	return l
}
