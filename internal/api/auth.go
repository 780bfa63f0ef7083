package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/chargepoint/pkg/handlers"
	"github.com/JaimeStill/chargepoint/pkg/web"
)

var errUnauthorized = errors.New("sign in required")

// requireSession rejects requests without a live session with 401.
func requireSession(auth web.Authenticator, runtime *Runtime) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Authenticated(r) {
				runtime.Metrics.Denied("api")
				handlers.RespondError(w, runtime.Logger, http.StatusUnauthorized, errUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
