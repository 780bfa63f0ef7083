// Package routes registers grouped HTTP handlers and documents them as they are registered.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/chargepoint/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route is one method and pattern pair. OpenAPI is optional; undocumented
// routes are still served.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Wrap returns a copy of g with mw applied to every route handler, including
// those of child groups.
func (g Group) Wrap(mw func(http.Handler) http.Handler) Group {
	out := g
	out.Routes = make([]Route, len(g.Routes))
	for i, r := range g.Routes {
		r.Handler = mw(r.Handler).ServeHTTP
		out.Routes[i] = r
	}
	out.Children = make([]Group, len(g.Children))
	for i, child := range g.Children {
		out.Children[i] = child.Wrap(mw)
	}
	return out
}

// Mux is the registration surface of http.ServeMux and compatible routers.
type Mux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Register adds every route in groups to mux and records documented routes in spec.
// Group tags are applied to operations that declare none. spec may be nil.
func Register(mux Mux, spec *openapi.Spec, groups ...Group) error {
	for _, g := range groups {
		if err := register(mux, spec, "", nil, g); err != nil {
			return err
		}
	}
	return nil
}

func register(mux Mux, spec *openapi.Spec, parent string, parentTags []string, g Group) error {
	prefix := parent + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	if spec != nil {
		for _, tag := range g.Tags {
			spec.AddTag(tag, g.Description)
		}
	}

	for _, r := range g.Routes {
		method := strings.ToUpper(r.Method)
		path := prefix + r.Pattern
		if path == "" {
			path = "/"
		}
		mux.HandleFunc(method+" "+path, r.Handler)

		if spec == nil || r.OpenAPI == nil {
			continue
		}
		if len(r.OpenAPI.Tags) == 0 {
			r.OpenAPI.Tags = tags
		}
		if err := spec.AddOperation(method, path, r.OpenAPI); err != nil {
			return fmt.Errorf("document %s %s: %w", method, path, err)
		}
	}

	for _, child := range g.Children {
		if err := register(mux, spec, prefix, tags, child); err != nil {
			return err
		}
	}
	return nil
}
