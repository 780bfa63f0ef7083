// Package app provides the web application module: the route table, its
// view handlers, and the embedded templates and assets they render.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/chargepoint/internal/sessions"
	"github.com/JaimeStill/chargepoint/internal/stations"
	"github.com/JaimeStill/chargepoint/internal/users"
	"github.com/JaimeStill/chargepoint/pkg/middleware"
	"github.com/JaimeStill/chargepoint/pkg/module"
	"github.com/JaimeStill/chargepoint/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

const (
	notFoundTemplate = "404.html"
	errorTemplate    = "error.html"
)

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

// Routes is the application route table.
var Routes = web.MustTable(
	web.RouteDef{Path: "/", Redirect: "/home"},
	web.RouteDef{Path: "/home", Name: "home", Template: "home.html", Title: "Home", Bundle: "app"},
	web.RouteDef{Path: "/login", Name: "login", Template: "login.html", Title: "Sign In", Bundle: "app"},
	web.RouteDef{Path: "/register", Name: "register", Template: "register.html", Title: "Create Account", Bundle: "app"},
	web.RouteDef{Path: "/profile", Name: "profile", Template: "profile.html", Title: "Profile", Bundle: "app", Meta: web.Meta{RequiresAuth: true}},
	web.RouteDef{Path: "/stations", Name: "stations", Template: "stations.html", Title: "Charging Stations", Bundle: "app", Meta: web.Meta{RequiresAuth: true}},
)

// Deps are the systems the view handlers call into.
type Deps struct {
	Users       users.System
	Stations    stations.System
	Sessions    *sessions.Store
	Logger      *slog.Logger
	Metrics     *middleware.Metrics
	MaxFormSize int64
}

// NewModule creates the app module mounted at basePath.
func NewModule(basePath string, deps Deps) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		Routes,
		notFoundTemplate,
		errorTemplate,
	)
	if err != nil {
		return nil, err
	}

	router, err := buildRouter(ts, deps)
	if err != nil {
		return nil, err
	}

	return module.New(basePath, deps.Sessions.Middleware()(router)), nil
}

func buildRouter(ts *web.TemplateSet, deps Deps) (http.Handler, error) {
	h := newHandler(ts, deps)

	loginURL, err := Routes.URL(ts.BasePath(), "login")
	if err != nil {
		return nil, err
	}
	guard := web.NewGuard(deps.Sessions, loginURL)
	if deps.Metrics != nil {
		guard.OnDenied(deps.Metrics.Denied)
	}

	views := map[string]http.HandlerFunc{
		"home":     ts.PageHandler(layout, h.route("home"), signedIn),
		"login":    h.loginForm,
		"register": h.registerForm,
		"profile":  h.profile,
		"stations": h.stations,
	}

	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, notFoundTemplate, http.StatusNotFound, "Not Found"))

	for _, route := range Routes.Redirects() {
		r.HandleFunc("GET "+route.Pattern(), web.RedirectHandler(ts.BasePath(), route))
	}

	for _, route := range Routes.Views() {
		view, ok := views[route.Name]
		if !ok {
			return nil, fmt.Errorf("no handler for route %s", route.Name)
		}
		var handler http.Handler = view
		handler = guard.Protect(route)(handler)
		if deps.Metrics != nil {
			handler = deps.Metrics.Route(route.Name)(handler)
		}
		r.Handle("GET "+route.Pattern(), handler)
	}

	r.HandleFunc("POST /login", h.login)
	r.HandleFunc("POST /register", h.register)
	r.HandleFunc("POST /logout", h.logout)

	r.Handle("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r, nil
}
