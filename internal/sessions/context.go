package sessions

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session stored by Middleware.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(Session)
	return sess, ok
}

// UserID returns the signed-in user id stored by Middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return sess.UserID, true
}

// Middleware attaches the live session, if any, to the request context.
func (s *Store) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := s.Get(s.Token(r)); ok {
				r = r.WithContext(WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}
