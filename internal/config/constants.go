package config

import "time"

// Defaults applied when an environment variable is unset or unparsable
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultLogRetain   = 10
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultServiceName = "grammorpg-api"

	DefaultDBUser    = "postgres"
	DefaultDBHost    = "localhost"
	DefaultDBPort    = "5432"
	DefaultDBName    = "grammorpg"
	DefaultDBSSLMode = "disable"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// Bootstrap retry policy
	DefaultDBConnectRetries = 5
	DefaultDBConnectDelay   = 5 * time.Second

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40

	DefaultShutdownTimeout = 15 * time.Second
)

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvLogRetention    = "LOG_RETENTION"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvServiceName     = "SERVICE_NAME"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBSSLMode       = "DB_SSLMODE"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvDBMaxIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvDBRetries       = "DB_CONNECT_RETRIES"
	EnvDBDelay         = "DB_CONNECT_DELAY"
	EnvRateLimitRPS    = "RATE_LIMIT_RPS"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvBcryptCost      = "BCRYPT_COST"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
