package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved
// and only safe methods are redirected so form posts are never dropped.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafe(r.Method) && len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				http.Redirect(w, r, withQuery(strings.TrimSuffix(requestPath(r), "/"), r.URL.RawQuery), http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestPath returns the path the client asked for. Modules strip their
// prefix from r.URL.Path, so redirects are built from RequestURI instead.
func requestPath(r *http.Request) string {
	if u, err := url.ParseRequestURI(r.RequestURI); err == nil && u.Path != "" {
		return u.Path
	}
	return r.URL.Path
}

func isSafe(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}
