package web

import (
	"net/http"
	"net/url"
	"strings"
)

// RedirectParam is the query parameter carrying the originally requested
// path through the login flow.
const RedirectParam = "redirect"

// Authenticator reports whether a request carries a valid identity.
type Authenticator interface {
	Authenticated(r *http.Request) bool
}

// Guard enforces Meta.RequiresAuth for view routes. Requests without an
// identity are sent to the login route with the requested path preserved.
type Guard struct {
	auth     Authenticator
	loginURL string
	denied   func(route string)
}

// NewGuard creates a Guard redirecting unauthenticated requests to loginURL.
func NewGuard(auth Authenticator, loginURL string) *Guard {
	return &Guard{
		auth:     auth,
		loginURL: loginURL,
	}
}

// OnDenied registers fn to be called with the route name of every denied request.
func (g *Guard) OnDenied(fn func(route string)) {
	g.denied = fn
}

// Protect returns middleware for route. Routes without RequiresAuth are
// returned unwrapped.
func (g *Guard) Protect(route RouteDef) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !route.Meta.RequiresAuth {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.auth.Authenticated(r) {
				next.ServeHTTP(w, r)
				return
			}
			if g.denied != nil {
				g.denied(route.Name)
			}
			http.Redirect(w, r, LoginRedirect(g.loginURL, r.URL.RequestURI()), http.StatusSeeOther)
		})
	}
}

// LoginRedirect appends the requested path to loginURL as the redirect parameter.
func LoginRedirect(loginURL, requested string) string {
	return loginURL + "?" + url.Values{RedirectParam: {requested}}.Encode()
}

// SafeRedirect returns target when it is a local application path and
// fallback otherwise. Absolute and scheme-relative URLs are rejected.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return target
}

// RedirectHandler answers a redirect route with 302 Found to its target
// under basePath, preserving the query string.
func RedirectHandler(basePath string, route RouteDef) http.HandlerFunc {
	target := JoinPath(basePath, route.Redirect)
	return func(w http.ResponseWriter, r *http.Request) {
		dest := target
		if r.URL.RawQuery != "" {
			dest += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, dest, http.StatusFound)
	}
}
