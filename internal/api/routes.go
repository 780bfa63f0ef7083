package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/chargepoint/internal/stations"
	"github.com/JaimeStill/chargepoint/pkg/handlers"
	"github.com/JaimeStill/chargepoint/pkg/openapi"
	"github.com/JaimeStill/chargepoint/pkg/routes"
	"github.com/JaimeStill/chargepoint/pkg/web"
)

var errNoRoute = errors.New("no such endpoint")

func registerRoutes(router *web.Router, spec *openapi.Spec, runtime *Runtime, domain *Domain) error {
	stationsHandler := stations.NewHandler(domain.Stations, runtime.Logger, runtime.Pagination)

	for name, schema := range stations.Schemas() {
		spec.AddSchema(name, schema)
	}

	router.SetFallback(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, runtime.Logger, http.StatusNotFound, errNoRoute)
	})

	return routes.Register(
		router,
		spec,
		stationsHandler.Routes().
			Wrap(requireSession(runtime.Sessions, runtime)).
			Wrap(runtime.Metrics.Route("api.stations")),
	)
}
