package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	Bundle   string
	BasePath string
	Route    string
	SignedIn bool
	User     any
	Error    string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
	table    *Table
}

// NewTemplateSet parses the layout templates once and clones them for every
// view in table plus any extra templates (such as error pages). Templates
// may call {{ url "name" }} to link to a named route and
// {{ asset "file" }} to reference a bundled asset.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewDir, basePath string, table *Table, extra ...string) (*TemplateSet, error) {
	basePath = NormalizeBasePath(basePath)

	funcs := template.FuncMap{
		"url": func(name string) (string, error) {
			return table.URL(basePath, name)
		},
		"asset": func(file string) string {
			return JoinPath(basePath, "/dist/"+file)
		},
	}

	layouts, err := template.New("").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(table.routes)+len(extra))
	for _, v := range table.Views() {
		names = append(names, v.Template)
	}
	names = append(names, extra...)

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", name, err)
		}
		if _, err := t.ParseFS(viewSub, name); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", name, err)
		}
		pages[name] = t
	}

	return &TemplateSet{
		pages:    pages,
		basePath: basePath,
		table:    table,
	}, nil
}

// BasePath returns the normalized base path templates are rendered with.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data returns PageData for route with the base path filled in.
func (ts *TemplateSet) Data(route RouteDef) PageData {
	return PageData{
		Title:    route.Title,
		Bundle:   route.Bundle,
		BasePath: ts.basePath,
		Route:    route.Name,
	}
}

// ErrorHandler returns an HTTP handler that renders an error template with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout, tmpl string, status int, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Title: title, BasePath: ts.basePath}
		if err := ts.Render(w, status, layout, tmpl, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns an HTTP handler that renders a view route. Each
// decorate func may add request-specific data before rendering.
func (ts *TemplateSet) PageHandler(layout string, route RouteDef, decorate ...func(*http.Request, *PageData)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.Data(route)
		for _, fn := range decorate {
			fn(r, &data)
		}
		if err := ts.Render(w, http.StatusOK, layout, route.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the layout for the given page into a buffer and writes it
// with status. Nothing is written when execution fails.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, page string, data PageData) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
