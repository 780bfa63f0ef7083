package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/chargepoint/internal/api"
	"github.com/JaimeStill/chargepoint/internal/config"
	"github.com/JaimeStill/chargepoint/internal/infrastructure"
	"github.com/JaimeStill/chargepoint/internal/stations"
	"github.com/JaimeStill/chargepoint/internal/users"
	"github.com/JaimeStill/chargepoint/pkg/middleware"
	"github.com/JaimeStill/chargepoint/pkg/module"
	"github.com/JaimeStill/chargepoint/web/app"
)

// Modules groups the mounted application modules.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules builds the API and app modules over infra.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime)

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	conn := infra.Database.Connection()

	appModule, err := app.NewModule(cfg.App.BasePath, app.Deps{
		Users:       users.New(conn, infra.Logger, cfg.Auth.BcryptCost),
		Stations:    stations.New(conn, infra.Logger, cfg.API.Pagination),
		Sessions:    infra.Sessions,
		Logger:      infra.Logger,
		Metrics:     infra.Metrics,
		MaxFormSize: cfg.Auth.MaxFormSizeBytes(),
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger))
	appModule.Use(middleware.CORS(&cfg.CORS))
	appModule.Use(middleware.TrimSlash())

	return &Modules{API: apiModule, App: appModule}, nil
}

// Mount registers every module with router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{}).ServeHTTP)

	return router
}
