package sessions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/internal/sessions"
)

func TestUserID_EmptyContext(t *testing.T) {
	if id, ok := sessions.UserID(context.Background()); ok || id != uuid.Nil {
		t.Errorf("UserID() = %v, %v, want Nil, false", id, ok)
	}
}

func TestWithSession(t *testing.T) {
	sess := sessions.Session{ID: uuid.New(), UserID: uuid.New()}
	ctx := sessions.WithSession(context.Background(), sess)

	got, ok := sessions.FromContext(ctx)
	if !ok || got.ID != sess.ID {
		t.Errorf("FromContext() = %+v, %v", got, ok)
	}
	if id, ok := sessions.UserID(ctx); !ok || id != sess.UserID {
		t.Errorf("UserID() = %v, %v, want %v", id, ok, sess.UserID)
	}
}

func TestStore_Middleware(t *testing.T) {
	store, _ := newStore(t, defaultConfig())
	userID := uuid.New()
	token, _, _ := store.Create(userID)

	var (
		gotID uuid.UUID
		gotOK bool
	)
	h := store.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = sessions.UserID(r.Context())
	}))

	t.Run("with session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.AddCookie(&http.Cookie{Name: "chargepoint_session", Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)

		if !gotOK || gotID != userID {
			t.Errorf("UserID() = %v, %v, want %v", gotID, gotOK, userID)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.AddCookie(&http.Cookie{Name: "chargepoint_session", Value: "forged"})
		h.ServeHTTP(httptest.NewRecorder(), req)

		if gotOK {
			t.Error("UserID() found a session for a forged token")
		}
	})
}
