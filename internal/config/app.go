package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvAppBasePath overrides the path the web application is mounted under.
const EnvAppBasePath = "APP_BASE_PATH"

// AppConfig contains web application mounting configuration.
type AppConfig struct {
	// BasePath is "/" or a single path segment such as "/app".
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *AppConfig) validate() error {
	if c.BasePath != "/" {
		c.BasePath = strings.TrimRight(c.BasePath, "/")
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	if c.BasePath != "/" && strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("base_path must be / or a single path segment: %s", c.BasePath)
	}
	return nil
}
