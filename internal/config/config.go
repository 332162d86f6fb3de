package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogFormat    string
	LogDir       string
	LogRetention int
	Environment  string
	Version      string
	ServiceName  string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// DBConnectRetries and DBConnectDelay drive the startup retry loop
	DBConnectRetries int
	DBConnectDelay   time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string

	BcryptCost      int
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:       getEnv(EnvLogDir, DefaultLogDir),
		LogRetention: getEnvAsInt(EnvLogRetention, DefaultLogRetain),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),
		Version:      getEnv(EnvVersion, DefaultVersion),
		ServiceName:  getEnv(EnvServiceName, DefaultServiceName),

		DBUser:     getEnv(EnvDBUser, DefaultDBUser),
		DBPassword: getEnv(EnvDBPassword, ""),
		DBHost:     getEnv(EnvDBHost, DefaultDBHost),
		DBPort:     getEnv(EnvDBPort, DefaultDBPort),
		DBName:     getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:  getEnv(EnvDBSSLMode, DefaultDBSSLMode),

		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxConnLifetime),

		DBConnectRetries: getEnvAsInt(EnvDBRetries, DefaultDBConnectRetries),
		DBConnectDelay:   getEnvAsDuration(EnvDBDelay, DefaultDBConnectDelay),

		RateLimitRPS:   getEnvAsFloat(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt(EnvRateLimitBurst, DefaultRateLimitBurst),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		BcryptCost:      getEnvAsInt(EnvBcryptCost, bcrypt.DefaultCost),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}
