package module

import "net/http"

// Router dispatches to mounted modules and natively registered handlers.
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler directly on the underlying mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. A root module receives every request
// not claimed by a more specific pattern.
func (r *Router) Mount(m *Module) {
	if m.IsRoot() {
		r.mux.HandleFunc("/", m.Serve)
		return
	}
	r.mux.HandleFunc(m.prefix, m.Serve)
	r.mux.HandleFunc(m.prefix+"/", m.Serve)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
