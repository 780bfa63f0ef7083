// Package web provides infrastructure for serving server-rendered pages:
// a declarative route table, pre-parsed templates, a navigation guard for
// routes that require authentication, and embedded static assets.
package web

import (
	"errors"
	"fmt"
	"strings"
)

// Route table errors.
var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrInvalidRoute  = errors.New("invalid route")
	ErrUnknownRoute  = errors.New("unknown route")
)

// Meta carries advisory flags read by middleware such as the navigation guard.
type Meta struct {
	RequiresAuth bool
}

// RouteDef describes one entry of the route table. A view route sets
// Template; a redirect route sets Redirect. Exactly one of the two is set.
type RouteDef struct {
	Path     string
	Name     string
	Template string
	Title    string
	Bundle   string
	Redirect string
	Meta     Meta
}

// IsRedirect reports whether the route forwards to another path.
func (r RouteDef) IsRedirect() bool {
	return r.Redirect != ""
}

// Pattern returns the ServeMux path pattern for the route. The root path
// matches only "/" rather than acting as a subtree.
func (r RouteDef) Pattern() string {
	if r.Path == "/" {
		return "/{$}"
	}
	return r.Path
}

// Table is an ordered, immutable set of routes with unique paths and names.
type Table struct {
	routes []RouteDef
	byPath map[string]int
	byName map[string]int
}

// NewTable validates defs and builds a Table preserving their order.
func NewTable(defs ...RouteDef) (*Table, error) {
	t := &Table{
		routes: make([]RouteDef, 0, len(defs)),
		byPath: make(map[string]int, len(defs)),
		byName: make(map[string]int, len(defs)),
	}

	for _, d := range defs {
		if err := validateRoute(d); err != nil {
			return nil, err
		}
		if _, ok := t.byPath[d.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, d.Path)
		}
		if d.Name != "" {
			if _, ok := t.byName[d.Name]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
			}
			t.byName[d.Name] = len(t.routes)
		}
		t.byPath[d.Path] = len(t.routes)
		t.routes = append(t.routes, d)
	}

	return t, nil
}

// MustTable is NewTable for package-level route declarations. It panics on
// an invalid table.
func MustTable(defs ...RouteDef) *Table {
	t, err := NewTable(defs...)
	if err != nil {
		panic(err)
	}
	return t
}

func validateRoute(d RouteDef) error {
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, d.Path)
	}
	switch {
	case d.Template == "" && d.Redirect == "":
		return fmt.Errorf("%w: %s has neither template nor redirect", ErrInvalidRoute, d.Path)
	case d.Template != "" && d.Redirect != "":
		return fmt.Errorf("%w: %s has both template and redirect", ErrInvalidRoute, d.Path)
	case d.Redirect != "" && !strings.HasPrefix(d.Redirect, "/"):
		return fmt.Errorf("%w: %s redirect %q must start with /", ErrInvalidRoute, d.Path, d.Redirect)
	case d.Template != "" && d.Name == "":
		return fmt.Errorf("%w: view %s requires a name", ErrInvalidRoute, d.Path)
	}
	return nil
}

// Routes returns a copy of the table in declaration order.
func (t *Table) Routes() []RouteDef {
	out := make([]RouteDef, len(t.routes))
	copy(out, t.routes)
	return out
}

// Views returns the view routes in declaration order.
func (t *Table) Views() []RouteDef {
	return t.filter(func(r RouteDef) bool { return !r.IsRedirect() })
}

// Redirects returns the redirect routes in declaration order.
func (t *Table) Redirects() []RouteDef {
	return t.filter(RouteDef.IsRedirect)
}

func (t *Table) filter(keep func(RouteDef) bool) []RouteDef {
	out := make([]RouteDef, 0, len(t.routes))
	for _, r := range t.routes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByName returns the route registered under name.
func (t *Table) ByName(name string) (RouteDef, bool) {
	i, ok := t.byName[name]
	if !ok {
		return RouteDef{}, false
	}
	return t.routes[i], true
}

// ByPath returns the route registered at path.
func (t *Table) ByPath(path string) (RouteDef, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return RouteDef{}, false
	}
	return t.routes[i], true
}

// Resolve follows redirects from path until a view route is reached.
// Unknown paths, dangling redirects, and redirect cycles report false.
func (t *Table) Resolve(path string) (RouteDef, bool) {
	seen := make(map[string]struct{}, len(t.routes))
	for {
		r, ok := t.ByPath(path)
		if !ok {
			return RouteDef{}, false
		}
		if !r.IsRedirect() {
			return r, true
		}
		if _, loop := seen[path]; loop {
			return RouteDef{}, false
		}
		seen[path] = struct{}{}
		path = r.Redirect
	}
}

// URL returns the path of the named route prefixed with basePath.
func (t *Table) URL(basePath, name string) (string, error) {
	r, ok := t.ByName(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return JoinPath(basePath, r.Path), nil
}

// NormalizeBasePath trims whitespace and trailing slashes and ensures a
// leading slash. The root base path normalizes to "".
func NormalizeBasePath(value string) string {
	p := strings.TrimSpace(value)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// JoinPath prefixes an application path with basePath.
func JoinPath(basePath, path string) string {
	base := NormalizeBasePath(basePath)
	if base == "" {
		return path
	}
	if path == "/" {
		return base + "/"
	}
	return base + path
}
