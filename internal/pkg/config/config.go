package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/unirides/unirides/internal/pkg/models"
)

// InitConfig loads configuration from the environment. When APP_ENV is
// local (the default) the env file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "unirides-api")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "memory")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRATION", 60*24)
	v.SetDefault("JWT_ISSUER", "unirides")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_AGE", 7)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_COMPRESS", true)
	v.SetDefault("LOG_TYPE", "console")

	v.SetDefault("NEW_RELIC_APP_NAME", "unirides-api")

	// Hargeisa city centre
	v.SetDefault("LOCATION_DEFAULT_LAT", 9.5624)
	v.SetDefault("LOCATION_DEFAULT_LNG", 44.0770)
	v.SetDefault("LOCATION_DEFAULT_ACCURACY", 10.0)
	v.SetDefault("LOCATION_AVERAGE_SPEED_KMH", 30.0)
	v.SetDefault("LOCATION_GEOHASH_PRECISION", 6)

	v.SetDefault("BOOKING_ACCEPT_RESERVES_SEAT", false)

	v.SetDefault("RATE_LIMIT_AUTH_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_AUTH_WINDOW", 60)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = strings.ToLower(v.GetString("DB_DRIVER"))
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.MaxSize = v.GetInt64("LOG_MAX_SIZE")
	configs.Logger.MaxAge = v.GetInt("LOG_MAX_AGE")
	configs.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	configs.Logger.Compress = v.GetBool("LOG_COMPRESS")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Location config
	configs.Location.DefaultLat = v.GetFloat64("LOCATION_DEFAULT_LAT")
	configs.Location.DefaultLng = v.GetFloat64("LOCATION_DEFAULT_LNG")
	configs.Location.DefaultAccuracy = v.GetFloat64("LOCATION_DEFAULT_ACCURACY")
	configs.Location.AverageSpeedKmh = v.GetFloat64("LOCATION_AVERAGE_SPEED_KMH")
	configs.Location.GeohashPrecision = v.GetUint("LOCATION_GEOHASH_PRECISION")

	// Booking config
	configs.Booking.AcceptReservesSeat = v.GetBool("BOOKING_ACCEPT_RESERVES_SEAT")

	// Rate limit config
	configs.RateLimit.AuthRequests = v.GetInt("RATE_LIMIT_AUTH_REQUESTS")
	configs.RateLimit.AuthWindow = v.GetInt("RATE_LIMIT_AUTH_WINDOW")

	return configs
}
