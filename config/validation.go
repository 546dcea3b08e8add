package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the configuration for the current environment.
// Production refuses to start without real credentials; development and
// test are allowed to fall back to the documented defaults.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBHost == "" {
		errors = append(errors, "DB_HOST is required")
	}
	if cfg.DBPort == "" {
		errors = append(errors, "DB_PORT is required")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME is required")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT is required")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "jwt_secret secret or JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" || cfg.DBPassword == "postgres" {
			errors = append(errors, "a non-default database password is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be disable in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
