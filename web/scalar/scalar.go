// Package scalar serves the interactive API reference page using Scalar UI.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/chargepoint/pkg/routes"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Page renders the reference page for the document served at specURL.
func Page(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := index.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	return buf.Bytes(), err
}

// Handler writes a pre-rendered page.
func Handler(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}

// Routes returns the documentation group mounted at /docs.
func Routes(page []byte) routes.Group {
	return routes.Group{
		Prefix: "/docs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: Handler(page)},
		},
	}
}
