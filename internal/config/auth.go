package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvAuthSessionTTL    = "AUTH_SESSION_TTL"
	EnvAuthSweepInterval = "AUTH_SWEEP_INTERVAL"
	EnvAuthCookieName    = "AUTH_COOKIE_NAME"
	EnvAuthCookieSecure  = "AUTH_COOKIE_SECURE"
	EnvAuthMaxFormSize   = "AUTH_MAX_FORM_SIZE"
	EnvAuthBcryptCost    = "AUTH_BCRYPT_COST"
)

// AuthConfig contains session and credential handling configuration.
type AuthConfig struct {
	SessionTTL    string `toml:"session_ttl"`
	SweepInterval string `toml:"sweep_interval"`
	CookieName    string `toml:"cookie_name"`
	CookieSecure  bool   `toml:"cookie_secure"`
	// MaxFormSize limits login and registration bodies, e.g. "64KB".
	MaxFormSize    string `toml:"max_form_size"`
	BcryptCost     int    `toml:"bcrypt_cost"`
	maxFormSizeVal int64
}

// SessionTTLDuration parses and returns the session lifetime.
func (c *AuthConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// SweepIntervalDuration parses and returns the expired session sweep interval.
func (c *AuthConfig) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// MaxFormSizeBytes returns the parsed form size limit. Valid after Finalize.
func (c *AuthConfig) MaxFormSizeBytes() int64 {
	return c.maxFormSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.CookieSecure {
		c.CookieSecure = true
	}
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}
	if overlay.BcryptCost != 0 {
		c.BcryptCost = overlay.BcryptCost
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.SessionTTL == "" {
		c.SessionTTL = "24h"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "5m"
	}
	if c.CookieName == "" {
		c.CookieName = "chargepoint_session"
	}
	if c.MaxFormSize == "" {
		c.MaxFormSize = "64KB"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthSessionTTL); v != "" {
		c.SessionTTL = v
	}
	if v := os.Getenv(EnvAuthSweepInterval); v != "" {
		c.SweepInterval = v
	}
	if v := os.Getenv(EnvAuthCookieName); v != "" {
		c.CookieName = v
	}
	if v := os.Getenv(EnvAuthCookieSecure); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			c.CookieSecure = secure
		}
	}
	if v := os.Getenv(EnvAuthMaxFormSize); v != "" {
		c.MaxFormSize = v
	}
	if v := os.Getenv(EnvAuthBcryptCost); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			c.BcryptCost = cost
		}
	}
}

func (c *AuthConfig) validate() error {
	ttl, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	size, err := units.FromHumanSize(c.MaxFormSize)
	if err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_form_size must be positive")
	}
	c.maxFormSizeVal = size

	return nil
}
