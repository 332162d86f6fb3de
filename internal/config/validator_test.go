package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:             8080,
		LogLevel:         "info",
		LogFormat:        "text",
		DBMaxConns:       10,
		DBConnectRetries: 5,
		DBConnectDelay:   5 * time.Second,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
		BcryptCost:       10,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero delay allowed", func(c *Config) { c.DBConnectDelay = 0 }, ""},
		{"port out of range", func(c *Config) { c.Port = 70000 }, EnvPort},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, EnvLogLevel},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, EnvLogFormat},
		{"no connections", func(c *Config) { c.DBMaxConns = 0 }, EnvDBMaxConns},
		{"no retries", func(c *Config) { c.DBConnectRetries = 0 }, EnvDBRetries},
		{"negative delay", func(c *Config) { c.DBConnectDelay = -time.Second }, EnvDBDelay},
		{"zero rate", func(c *Config) { c.RateLimitRPS = 0 }, EnvRateLimitRPS},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, EnvRateLimitBurst},
		{"bcrypt cost too low", func(c *Config) { c.BcryptCost = 1 }, EnvBcryptCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	cfg.DBConnectRetries = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
	assert.Contains(t, err.Error(), EnvDBRetries)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig()
	cfg.DBPassword = "change_this_secure_password"
	cfg.Environment = "prod"
	cfg.DBSSLMode = "disable"

	warnings := cfg.Warnings()
	assert.Len(t, warnings, 2)

	cfg.DBPassword = "s3cret"
	cfg.DBSSLMode = "require"
	assert.Empty(t, cfg.Warnings())
}
