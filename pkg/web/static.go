package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// Route is a method, pattern, and handler triple for static file routes.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files from subdir of fsys with urlPrefix stripped.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		ServeEmbeddedFile(data, contentType)(w, r)
	}
}

// PublicFileRoutes builds a GET route at "/<name>" for every file.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []Route {
	routes := make([]Route, 0, len(files))
	for _, f := range files {
		routes = append(routes, Route{
			Method:  http.MethodGet,
			Pattern: "/" + f,
			Handler: PublicFile(fsys, subdir, f),
		})
	}
	return routes
}

// ServeEmbeddedFile writes data with the given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
