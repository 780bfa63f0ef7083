package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/chargepoint/pkg/openapi"
	"github.com/JaimeStill/chargepoint/pkg/pagination"
)

// EnvAPIBasePath overrides the path the JSON API is mounted under.
const EnvAPIBasePath = "API_BASE_PATH"

var paginationEnv = &pagination.Env{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.Env{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}

// APIConfig contains JSON API mounting, paging and documentation configuration.
type APIConfig struct {
	BasePath   string            `toml:"base_path"`
	Pagination pagination.Config `toml:"pagination"`
	OpenAPI    openapi.Config    `toml:"openapi"`
}

// Finalize applies defaults, loads environment overrides, and validates the API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *APIConfig) validate() error {
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.BasePath == "" || !strings.HasPrefix(c.BasePath, "/") || strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("base_path must be a single path segment such as /api: %q", c.BasePath)
	}
	return nil
}
