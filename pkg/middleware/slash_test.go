package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/chargepoint/pkg/middleware"
	"github.com/JaimeStill/chargepoint/pkg/module"
)

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"redirects", http.MethodGet, "/stations/", http.StatusMovedPermanently, "/stations"},
		{"keeps query", http.MethodGet, "/stations/?city=Leeds", http.StatusMovedPermanently, "/stations?city=Leeds"},
		{"preserves root", http.MethodGet, "/", http.StatusOK, ""},
		{"passes bare", http.MethodGet, "/stations", http.StatusOK, ""},
		{"redirects head", http.MethodHead, "/home/", http.StatusMovedPermanently, "/home"},
		{"ignores post", http.MethodPost, "/login/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			middleware.TrimSlash()(handler).ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}

func TestTrimSlash_MountedModule(t *testing.T) {
	m := module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	m.Use(middleware.TrimSlash())

	router := module.NewRouter()
	router.Mount(m)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stations/?page=2", nil))

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMovedPermanently)
	}
	if got := w.Header().Get("Location"); got != "/api/stations?page=2" {
		t.Errorf("Location = %q, want prefix kept", got)
	}
}
