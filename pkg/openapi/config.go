package openapi

import "os"

// Env maps environment variable names for document metadata.
type Env struct {
	Title       string
	Description string
}

// Config holds the document metadata shown by the API reference.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Finalize applies defaults and environment overrides.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies non-empty values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Chargepoint API"
	}
	if c.Description == "" {
		c.Description = "Read access to the charging station directory for signed-in users."
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := os.Getenv(env.Description); v != "" {
		c.Description = v
	}
}
