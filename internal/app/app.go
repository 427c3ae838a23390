// Package app assembles the HTTP API from the infrastructure handed to it
// by cmd/api.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/unirides/unirides/internal/pkg/circuitbreaker"
	"github.com/unirides/unirides/internal/pkg/database"
	"github.com/unirides/unirides/internal/pkg/health"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/middleware"
	"github.com/unirides/unirides/internal/pkg/models"
	natspkg "github.com/unirides/unirides/internal/pkg/nats"
	"github.com/unirides/unirides/services/bookings"
	bookingsgw "github.com/unirides/unirides/services/bookings/gateway"
	bookingshandler "github.com/unirides/unirides/services/bookings/handler"
	bookingshttp "github.com/unirides/unirides/services/bookings/handler/http"
	bookingsrepo "github.com/unirides/unirides/services/bookings/repository"
	bookingsuc "github.com/unirides/unirides/services/bookings/usecase"
	"github.com/unirides/unirides/services/location"
	locationhandler "github.com/unirides/unirides/services/location/handler"
	locationhttp "github.com/unirides/unirides/services/location/handler/http"
	locationrepo "github.com/unirides/unirides/services/location/repository"
	locationuc "github.com/unirides/unirides/services/location/usecase"
	"github.com/unirides/unirides/services/requests"
	requestsgw "github.com/unirides/unirides/services/requests/gateway"
	requestshandler "github.com/unirides/unirides/services/requests/handler"
	requestshttp "github.com/unirides/unirides/services/requests/handler/http"
	requestsrepo "github.com/unirides/unirides/services/requests/repository"
	requestsuc "github.com/unirides/unirides/services/requests/usecase"
	"github.com/unirides/unirides/services/rides"
	ridesgw "github.com/unirides/unirides/services/rides/gateway"
	rideshandler "github.com/unirides/unirides/services/rides/handler"
	rideshttp "github.com/unirides/unirides/services/rides/handler/http"
	ridesrepo "github.com/unirides/unirides/services/rides/repository"
	ridesuc "github.com/unirides/unirides/services/rides/usecase"
	"github.com/unirides/unirides/services/users"
	usershandler "github.com/unirides/unirides/services/users/handler"
	usershttp "github.com/unirides/unirides/services/users/handler/http"
	usersrepo "github.com/unirides/unirides/services/users/repository"
	usersuc "github.com/unirides/unirides/services/users/usecase"
)

// Dependencies are the connections the API runs on. A nil Postgres
// selects the in-process store, a nil Redis keeps locations in that store
// and turns off rate limiting, and a nil NATS drops events.
type Dependencies struct {
	Postgres *database.PostgresClient
	Redis    *database.RedisClient
	NATS     *natspkg.Client
	NewRelic *newrelic.Application
	Logger   *logger.ZapLogger
	// Store backs the memory driver. Created when nil.
	Store *memstore.Store
}

type repositories struct {
	users    users.UserRepo
	rides    rides.RideRepo
	bookings bookings.BookingRepo
	requests requests.RequestRepo
	location location.LocationRepo
}

func newRepositories(deps *Dependencies) repositories {
	var repos repositories

	if deps.Postgres != nil {
		db := deps.Postgres.GetDB()
		repos.users = usersrepo.NewUserRepo(db)
		repos.rides = ridesrepo.NewRideRepo(db)
		repos.bookings = bookingsrepo.NewBookingRepo(db)
		repos.requests = requestsrepo.NewRequestRepo(db)
	} else {
		if deps.Store == nil {
			deps.Store = memstore.New()
		}
		repos.users = usersrepo.NewMemoryUserRepo(deps.Store)
		repos.rides = ridesrepo.NewMemoryRideRepo(deps.Store)
		repos.bookings = bookingsrepo.NewMemoryBookingRepo(deps.Store)
		repos.requests = requestsrepo.NewMemoryRequestRepo(deps.Store)
	}

	if deps.Redis != nil {
		repos.location = locationrepo.NewRedisLocationRepo(deps.Redis)
	} else {
		if deps.Store == nil {
			deps.Store = memstore.New()
		}
		repos.location = locationrepo.NewMemoryLocationRepo(deps.Store)
	}
	return repos
}

func publisher(deps Dependencies) natspkg.Publisher {
	if deps.NATS == nil {
		return natspkg.NopPublisher{}
	}
	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("nats-publish"), deps.Logger)
	return natspkg.NewGuardedPublisher(deps.NATS, breaker)
}

// New builds the echo server with middleware, health endpoints and every
// service route registered
func New(cfg *models.Config, deps Dependencies) *echo.Echo {
	if deps.Logger == nil {
		deps.Logger = logger.NewNopLogger()
	}

	repos := newRepositories(&deps)
	pub := publisher(deps)

	userUC := usersuc.NewUserUC(cfg, repos.users)
	rideUC := ridesuc.NewRideUC(cfg, repos.rides, ridesgw.NewRideGW(pub))
	bookingUC := bookingsuc.NewBookingUC(cfg, repos.bookings, bookingsgw.NewBookingGW(pub))
	requestUC := requestsuc.NewRequestUC(cfg, repos.requests, requestsgw.NewRequestGW(pub))
	locationUC := locationuc.NewLocationUC(cfg, repos.location)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestContextMiddleware(cfg.App.Name))
	e.Use(middleware.NewRelicMiddleware(deps.NewRelic))
	e.Use(logger.ZapEchoMiddleware(deps.Logger))
	e.Use(middleware.PanicRecoveryMiddleware(deps.Logger))

	health.RegisterHealthEndpoints(e, cfg.App, newHealthService(deps))

	var authMiddleware []echo.MiddlewareFunc
	if deps.Redis != nil && cfg.RateLimit.AuthRequests > 0 {
		window := time.Duration(cfg.RateLimit.AuthWindow) * time.Second
		authMiddleware = append(authMiddleware,
			middleware.IPRateLimiter(cfg.RateLimit.AuthRequests, window, deps.Redis.Client))
	}

	jwtAuth := middleware.JWTAuthMiddleware(cfg.JWT)

	usershandler.NewHandler(usershttp.NewAuthHandler(userUC), usershttp.NewUserHandler(userUC)).
		RegisterRoutes(e, jwtAuth, authMiddleware...)
	rideshandler.NewHandler(rideshttp.NewRideHandler(rideUC)).RegisterRoutes(e, jwtAuth)
	bookingshandler.NewHandler(bookingshttp.NewBookingHandler(bookingUC)).RegisterRoutes(e, jwtAuth)
	requestshandler.NewHandler(requestshttp.NewRequestHandler(requestUC)).RegisterRoutes(e, jwtAuth)
	locationhandler.NewHandler(locationhttp.NewLocationHandler(locationUC)).RegisterRoutes(e, jwtAuth)

	return e
}

func newHealthService(deps Dependencies) *health.Service {
	svc := health.NewService()
	if deps.Postgres != nil {
		svc.AddChecker("postgres", health.PostgresChecker(deps.Postgres))
	}
	if deps.Redis != nil {
		svc.AddChecker("redis", health.RedisChecker(deps.Redis))
	}
	if deps.NATS != nil {
		svc.AddChecker("nats", health.NATSChecker(deps.NATS))
	}
	return svc
}
