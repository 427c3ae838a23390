package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
	Location  LocationConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration.
// Driver is either "memory" or "postgres".
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger output configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LocationConfig holds the fallback position and routing constants
type LocationConfig struct {
	DefaultLat       float64
	DefaultLng       float64
	DefaultAccuracy  float64
	AverageSpeedKmh  float64
	GeohashPrecision uint
}

// BookingConfig contains booking behaviour switches
type BookingConfig struct {
	// AcceptReservesSeat makes request acceptance decrement the ride's
	// seats the same way direct booking creation does.
	AcceptReservesSeat bool
}

// RateLimitConfig contains the fixed window limits for public endpoints
type RateLimitConfig struct {
	AuthRequests int
	AuthWindow   int // in seconds
}
