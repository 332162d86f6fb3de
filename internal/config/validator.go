package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be between 1 and 65535, got %d", EnvPort, c.Port))
	}
	if !contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", EnvLogLevel, strings.Join(validLogLevels, ", "), c.LogLevel))
	}
	if !contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", EnvLogFormat, strings.Join(validLogFormats, ", "), c.LogFormat))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvDBMaxConns, c.DBMaxConns))
	}
	if c.DBConnectRetries < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvDBRetries, c.DBConnectRetries))
	}
	if c.DBConnectDelay < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", EnvDBDelay, c.DBConnectDelay))
	}
	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvRateLimitRPS, c.RateLimitRPS))
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvRateLimitBurst, c.RateLimitBurst))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%s must be between %d and %d, got %d", EnvBcryptCost, bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Warnings returns non-fatal configuration concerns
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == "" {
		warnings = append(warnings, "DB_PASSWORD is empty")
	}
	if c.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.Environment == "prod" && c.DBSSLMode == DefaultDBSSLMode {
		warnings = append(warnings, "DB_SSLMODE is disabled in production")
	}

	return warnings
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
