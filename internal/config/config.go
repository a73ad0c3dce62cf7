package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	LogDir          string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration
	RunMigrations bool

	APIKey         string   // Guards securities administration when set
	TrustedProxies []string // Proxies allowed to set X-Forwarded-For

	Currency              string // ISO 4217 code used when formatting balances
	MinSecurities         int    // Catalog size required before a portfolio can be built
	MaxAllocationCapacity int    // Largest budget handed to the allocator
	TokenCacheSize        int
	TokenCacheTTL         time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:          getEnv(EnvLogDir, DefaultLogDir),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		Version:         getEnv(EnvVersion, DefaultVersion),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		DBUser:        getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:    getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:        getEnv(EnvDBHost, DefaultDBHost),
		DBPort:        getEnv(EnvDBPort, DefaultDBPort),
		DBName:        getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle),
		DBMaxConnLife: getEnvAsDuration(EnvDBMaxConnLife, DefaultDBMaxConnLife),
		RunMigrations: getEnvAsBool(EnvRunMigrations, true),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsSlice(EnvTrustedProxies),

		Currency:              strings.ToUpper(getEnv(EnvCurrency, DefaultCurrency)),
		MinSecurities:         getEnvAsInt(EnvMinSecurities, DefaultMinSecurities),
		MaxAllocationCapacity: getEnvAsInt(EnvMaxAllocationCapacity, DefaultMaxAllocationCapacity),
		TokenCacheSize:        getEnvAsInt(EnvTokenCacheSize, DefaultTokenCacheSize),
		TokenCacheTTL:         getEnvAsDuration(EnvTokenCacheTTL, DefaultTokenCacheTTL),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.MinSecurities < 0 {
		return nil, fmt.Errorf("invalid %s value: must be non-negative, got %d", EnvMinSecurities, cfg.MinSecurities)
	}
	if cfg.MaxAllocationCapacity <= 0 {
		return nil, fmt.Errorf("invalid %s value: must be positive, got %d", EnvMaxAllocationCapacity, cfg.MaxAllocationCapacity)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration parses a time.Duration environment variable such as "30s" or "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return defaultValue
	}
	return parsed
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsSlice splits a comma-separated variable, dropping empty entries
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
