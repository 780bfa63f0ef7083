package web

import "net/http"

// Router wraps http.ServeMux with a fallback for unmatched requests so a
// rendered 404 page replaces the mux default.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a Router with no fallback.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers handler for pattern.
func (rt *Router) Handle(pattern string, handler http.Handler) {
	rt.mux.Handle(pattern, handler)
}

// HandleFunc registers handler for pattern.
func (rt *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	rt.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler used when no pattern matches.
func (rt *Router) SetFallback(handler http.HandlerFunc) {
	rt.fallback = handler
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rt.fallback != nil {
		if _, pattern := rt.mux.Handler(r); pattern == "" {
			rt.fallback(w, r)
			return
		}
	}
	rt.mux.ServeHTTP(w, r)
}
