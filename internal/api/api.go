// Package api mounts the JSON API module with its generated OpenAPI document
// and interactive reference.
package api

import (
	"fmt"

	"github.com/JaimeStill/chargepoint/internal/config"
	"github.com/JaimeStill/chargepoint/pkg/middleware"
	"github.com/JaimeStill/chargepoint/pkg/module"
	"github.com/JaimeStill/chargepoint/pkg/openapi"
	"github.com/JaimeStill/chargepoint/pkg/routes"
	"github.com/JaimeStill/chargepoint/pkg/web"
	"github.com/JaimeStill/chargepoint/web/scalar"
)

// SessionScheme names the cookie security scheme in the OpenAPI document.
const SessionScheme = "session"

// NewModule builds the API module. The OpenAPI document is generated once from
// the registered routes; GET /openapi.json serves it and GET /docs renders it.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.AddCookieAuth(SessionScheme, cfg.Auth.CookieName, "Session cookie issued by the login form")

	router := web.NewRouter()
	if err := registerRoutes(router, spec, runtime, domain); err != nil {
		return nil, fmt.Errorf("register api routes: %w", err)
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	router.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	page, err := scalar.Page(spec.Info.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("render api reference: %w", err)
	}
	if err := routes.Register(router, nil, scalar.Routes(page)); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, runtime.Sessions.Middleware()(router))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.CORS))
	m.Use(middleware.TrimSlash())

	return m, nil
}
