package config

import "time"

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvLogDir                = "LOG_DIR"
	EnvEnvironment           = "ENVIRONMENT"
	EnvVersion               = "VERSION"
	EnvShutdownTimeout       = "SHUTDOWN_TIMEOUT"
	EnvDBUser                = "DB_USER"
	EnvDBPassword            = "DB_PASSWORD"
	EnvDBHost                = "DB_HOST"
	EnvDBPort                = "DB_PORT"
	EnvDBName                = "DB_NAME"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxConnIdle         = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife         = "DB_MAX_CONN_LIFE"
	EnvRunMigrations         = "RUN_MIGRATIONS"
	EnvAPIKey                = "API_KEY"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvCurrency              = "CURRENCY"
	EnvMinSecurities         = "MIN_SECURITIES"
	EnvMaxAllocationCapacity = "PORTFOLIO_MAX_CAPACITY"
	EnvTokenCacheSize        = "TOKEN_CACHE_SIZE"
	EnvTokenCacheTTL         = "TOKEN_CACHE_TTL"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultDBUser        = "postgres"
	DefaultDBPassword    = "postgres"
	DefaultDBHost        = "localhost"
	DefaultDBPort        = "5432"
	DefaultDBName        = "stockdesk"
	DefaultDBMaxConns    = 10
	DefaultDBMaxConnIdle = 5 * time.Minute
	DefaultDBMaxConnLife = 30 * time.Minute

	DefaultCurrency              = "KRW"
	DefaultMinSecurities         = 10
	DefaultMaxAllocationCapacity = 10_000_000
	DefaultTokenCacheSize        = 1024
	DefaultTokenCacheTTL         = 5 * time.Minute
)
