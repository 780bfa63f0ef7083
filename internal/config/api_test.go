package config_test

import (
	"testing"

	"github.com/JaimeStill/chargepoint/internal/config"
	"github.com/JaimeStill/chargepoint/pkg/pagination"
)

func TestAPIConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.APIConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.BasePath)
	}
	if cfg.Pagination.DefaultPageSize != 20 || cfg.Pagination.MaxPageSize != 100 {
		t.Errorf("Pagination = %+v", cfg.Pagination)
	}
	if cfg.OpenAPI.Title != "Chargepoint API" {
		t.Errorf("OpenAPI.Title = %q", cfg.OpenAPI.Title)
	}
}

func TestAPIConfig_Finalize_Env(t *testing.T) {
	t.Setenv(config.EnvAPIBasePath, "/v1/")
	t.Setenv("API_PAGINATION_MAX_PAGE_SIZE", "40")
	t.Setenv("API_OPENAPI_TITLE", "Stations")

	cfg := &config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != "/v1" {
		t.Errorf("BasePath = %q, want /v1", cfg.BasePath)
	}
	if cfg.Pagination.MaxPageSize != 40 {
		t.Errorf("MaxPageSize = %d, want 40", cfg.Pagination.MaxPageSize)
	}
	if cfg.OpenAPI.Title != "Stations" {
		t.Errorf("OpenAPI.Title = %q", cfg.OpenAPI.Title)
	}
}

func TestAPIConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.APIConfig
	}{
		{"root", config.APIConfig{BasePath: "/"}},
		{"relative", config.APIConfig{BasePath: "api"}},
		{"nested", config.APIConfig{BasePath: "/api/v1"}},
		{"pagination", config.APIConfig{Pagination: pagination.Config{DefaultPageSize: 500, MaxPageSize: 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(); err == nil {
				t.Error("Finalize() expected error")
			}
		})
	}
}

func TestAPIConfig_Merge(t *testing.T) {
	cfg := &config.APIConfig{BasePath: "/api", Pagination: pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}}
	cfg.Merge(&config.APIConfig{BasePath: "/v2", Pagination: pagination.Config{MaxPageSize: 30}})

	if cfg.BasePath != "/v2" {
		t.Errorf("BasePath = %q", cfg.BasePath)
	}
	if cfg.Pagination.DefaultPageSize != 20 || cfg.Pagination.MaxPageSize != 30 {
		t.Errorf("Pagination = %+v", cfg.Pagination)
	}
}
