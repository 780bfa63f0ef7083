package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Version is the OpenAPI document version emitted by NewSpec.
const Version = "3.1.0"

// NewSpec creates an empty document with the standard error responses registered.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: Version,
		Info:    &Info{Title: title, Version: version},
		Paths:   make(map[string]*PathItem),
		Components: &Components{
			Schemas: map[string]*Schema{
				"Error": {
					Type:       "object",
					Properties: map[string]*Schema{"error": {Type: "string"}},
					Required:   []string{"error"},
				},
			},
			Responses: map[string]*Response{
				"BadRequest":   ResponseJSON("Invalid request", "Error"),
				"Unauthorized": ResponseJSON("No valid session", "Error"),
				"NotFound":     ResponseJSON("Resource not found", "Error"),
			},
		},
	}
}

// SetDescription sets the document description.
func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

// AddServer appends a server URL.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddTag registers a tag once; later descriptions for the same name are ignored.
func (s *Spec) AddTag(name, description string) {
	for _, t := range s.Tags {
		if t.Name == name {
			return
		}
	}
	s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
}

// AddSchema registers a named component schema.
func (s *Spec) AddSchema(name string, schema *Schema) {
	s.Components.Schemas[name] = schema
}

// AddCookieAuth declares cookie authentication and requires it for every operation.
func (s *Spec) AddCookieAuth(scheme, cookie, description string) {
	if s.Components.SecuritySchemes == nil {
		s.Components.SecuritySchemes = make(map[string]*SecurityScheme)
	}
	s.Components.SecuritySchemes[scheme] = &SecurityScheme{
		Type:        "apiKey",
		In:          "cookie",
		Name:        cookie,
		Description: description,
	}
	s.Security = append(s.Security, map[string][]string{scheme: {}})
}

// AddOperation attaches op to path under method. Only GET and POST are supported.
func (s *Spec) AddOperation(method, path string, op *Operation) error {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	default:
		return fmt.Errorf("unsupported method %s for %s", method, path)
	}
	return nil
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(s *Spec) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ServeSpec returns a handler that writes the pre-rendered document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
