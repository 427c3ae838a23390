package main

import (
	"context"
	"log"
	"time"

	"github.com/unirides/unirides/internal/app"
	"github.com/unirides/unirides/internal/pkg/config"
	"github.com/unirides/unirides/internal/pkg/database"
	"github.com/unirides/unirides/internal/pkg/logger"
	natspkg "github.com/unirides/unirides/internal/pkg/nats"
	nrpkg "github.com/unirides/unirides/internal/pkg/newrelic"
	"github.com/unirides/unirides/internal/pkg/retry"
	"github.com/unirides/unirides/internal/pkg/server"
)

const configPath = "config/api.env"

func main() {
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("db_driver", configs.Database.Driver),
	)

	ctx := context.Background()
	retrier := retry.New(retry.DefaultConfig(), zapLogger)
	shutdown := server.NewShutdownManager(zapLogger)
	deps := app.Dependencies{NewRelic: nrApp, Logger: zapLogger}

	if configs.Database.Driver == "postgres" {
		err := retrier.Execute(ctx, "connect postgres", func(ctx context.Context) error {
			client, err := database.NewPostgresClient(ctx, configs.Database)
			deps.Postgres = client
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		shutdown.Register("postgres", func(context.Context) error { return deps.Postgres.Close() })
	}

	if configs.Redis.Host != "" {
		err := retrier.Execute(ctx, "connect redis", func(ctx context.Context) error {
			client, err := database.NewRedisClient(ctx, configs.Redis)
			deps.Redis = client
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return deps.Redis.Close() })
	} else {
		zapLogger.Warn("REDIS_HOST not set, locations kept in memory and auth rate limiting disabled")
	}

	if configs.NATS.URL != "" {
		err := retrier.Execute(ctx, "connect nats", func(context.Context) error {
			client, err := natspkg.NewClient(configs.NATS.URL, configs.App.Name)
			deps.NATS = client
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdown.Register("nats", func(context.Context) error {
			deps.NATS.Close()
			return nil
		})
	}

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	shutdown.Register("logger", func(context.Context) error { return zapLogger.Close() })

	e := app.New(configs, deps)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
