package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/chargepoint/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Chargepoint API", "1.2.0")

	if spec.OpenAPI != openapi.Version {
		t.Errorf("OpenAPI = %q, want %q", spec.OpenAPI, openapi.Version)
	}
	if spec.Info.Title != "Chargepoint API" || spec.Info.Version != "1.2.0" {
		t.Errorf("Info = %+v", spec.Info)
	}
	for _, name := range []string{"BadRequest", "Unauthorized", "NotFound"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing %s response", name)
		}
	}
	if _, ok := spec.Components.Schemas["Error"]; !ok {
		t.Error("missing Error schema")
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	get := &openapi.Operation{Summary: "list"}
	post := &openapi.Operation{Summary: "search"}

	if err := spec.AddOperation("GET", "/stations", get); err != nil {
		t.Fatalf("AddOperation(GET) error = %v", err)
	}
	if err := spec.AddOperation("post", "/stations", post); err != nil {
		t.Fatalf("AddOperation(post) error = %v", err)
	}
	if err := spec.AddOperation("DELETE", "/stations", get); err == nil {
		t.Error("AddOperation(DELETE) expected error")
	}

	item := spec.Paths["/stations"]
	if item.Get != get || item.Post != post {
		t.Errorf("PathItem = %+v", item)
	}
}

func TestSpec_AddTag(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	spec.AddTag("Stations", "first")
	spec.AddTag("Stations", "second")

	if len(spec.Tags) != 1 || spec.Tags[0].Description != "first" {
		t.Errorf("Tags = %+v", spec.Tags)
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Chargepoint API", "dev")
	spec.SetDescription("stations")
	spec.AddServer("/api")
	spec.AddCookieAuth("session", "chargepoint_session", "Session cookie")
	spec.AddOperation("GET", "/stations/{id}", &openapi.Operation{
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Station UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Station", "Station"),
			404: openapi.ResponseRef("NotFound"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v", doc["openapi"])
	}
	if _, ok := doc["security"]; !ok {
		t.Error("missing security requirement")
	}

	paths := doc["paths"].(map[string]any)
	get := paths["/stations/{id}"].(map[string]any)["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	if ref := responses["404"].(map[string]any)["$ref"]; ref != "#/components/responses/NotFound" {
		t.Errorf("404 ref = %v", ref)
	}

	schemes := doc["components"].(map[string]any)["securitySchemes"].(map[string]any)
	session := schemes["session"].(map[string]any)
	if session["in"] != "cookie" || session["name"] != "chargepoint_session" {
		t.Errorf("session scheme = %v", session)
	}
}

func TestServeSpec(t *testing.T) {
	body := []byte(`{"openapi":"3.1.0"}`)
	w := httptest.NewRecorder()
	openapi.ServeSpec(body)(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != string(body) {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestConfig_Finalize(t *testing.T) {
	env := &openapi.Env{Title: "TEST_OPENAPI_TITLE", Description: "TEST_OPENAPI_DESCRIPTION"}
	t.Setenv(env.Title, "Stations")

	var cfg openapi.Config
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Title != "Stations" {
		t.Errorf("Title = %q, want env override", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}

	cfg.Merge(&openapi.Config{Description: "override"})
	if cfg.Description != "override" || cfg.Title != "Stations" {
		t.Errorf("Merge() = %+v", cfg)
	}
}
