// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, TokenService) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// InsecureDefaultJWTSecret is the fallback signing secret used when JWT_SECRET
// is unset. It exists for local development only; Load reports whether it is
// in effect so main can log a loud warning.
const InsecureDefaultJWTSecret = "default_jwt_secret_key_change_me_in_production"

// # Configuration Schema

// Config holds all runtime configuration for the Clinicore API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Signing secrets for the dual-token scheme. Access and refresh tokens are
	// signed with independent secrets so that a leaked refresh secret cannot
	// mint access tokens and vice versa.
	JWTSecret          string `env:"JWT_SECRET" envDefault:"default_jwt_secret_key_change_me_in_production"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`

	// Token lifetimes
	AccessTokenTTLHours  int `env:"JWT_EXPIRATION_HOURS"           envDefault:"1"`
	RefreshTokenTTLDays  int `env:"REFRESH_TOKEN_EXPIRATION_DAYS"  envDefault:"7"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// The refresh secret defaults to a value derived from the access secret.
	// This mirrors the legacy deployment contract and is insecure; production
	// deployments must set REFRESH_TOKEN_SECRET explicitly.
	if cfg.RefreshTokenSecret == "" {
		cfg.RefreshTokenSecret = cfg.JWTSecret + "_refresh"
	}

	if cfg.AccessTokenTTLHours < 1 {
		cfg.AccessTokenTTLHours = 1
	}
	if cfg.RefreshTokenTTLDays < 1 {
		cfg.RefreshTokenTTLDays = 7
	}

	return cfg, nil
}

// AccessTokenTTL returns the configured access token lifetime as a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLHours) * time.Hour
}

// RefreshTokenTTL returns the configured refresh token lifetime as a duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLDays) * 24 * time.Hour
}

// UsesInsecureJWTSecret reports whether the server is running on the built-in
// development signing secret.
func (c *Config) UsesInsecureJWTSecret() bool {
	return c.JWTSecret == InsecureDefaultJWTSecret
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
