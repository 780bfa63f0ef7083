package sessions_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/internal/sessions"
	"github.com/JaimeStill/chargepoint/pkg/lifecycle"
	"github.com/JaimeStill/chargepoint/pkg/web"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(t *testing.T, cfg sessions.Config) (*sessions.Store, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sessions.NewStore(cfg, logger, sessions.WithClock(c.Now)), c
}

func defaultConfig() sessions.Config {
	return sessions.Config{
		TTL:        time.Hour,
		CookieName: "chargepoint_session",
	}
}

func TestStore_CreateGet(t *testing.T) {
	store, c := newStore(t, defaultConfig())
	userID := uuid.New()

	token, sess, err := store.Create(userID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if token == "" {
		t.Fatal("Create() returned empty token")
	}
	if sess.UserID != userID {
		t.Errorf("UserID = %v, want %v", sess.UserID, userID)
	}
	if want := c.Now().Add(time.Hour); !sess.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", sess.ExpiresAt, want)
	}

	got, ok := store.Get(token)
	if !ok {
		t.Fatal("Get() did not find session")
	}
	if got.ID != sess.ID {
		t.Errorf("Get().ID = %v, want %v", got.ID, sess.ID)
	}
}

func TestStore_Create_UniqueTokens(t *testing.T) {
	store, _ := newStore(t, defaultConfig())
	userID := uuid.New()

	a, _, _ := store.Create(userID)
	b, _, _ := store.Create(userID)

	if a == b {
		t.Error("Create() returned duplicate tokens")
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestStore_Get_Unknown(t *testing.T) {
	store, _ := newStore(t, defaultConfig())

	for _, token := range []string{"", "missing"} {
		if _, ok := store.Get(token); ok {
			t.Errorf("Get(%q) found a session", token)
		}
	}
}

func TestStore_Get_Expired(t *testing.T) {
	store, c := newStore(t, defaultConfig())

	token, _, _ := store.Create(uuid.New())
	c.Advance(time.Hour)

	if _, ok := store.Get(token); ok {
		t.Error("Get() returned expired session")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want expired session removed", store.Len())
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := newStore(t, defaultConfig())

	token, _, _ := store.Create(uuid.New())
	store.Delete(token)
	store.Delete("missing")

	if _, ok := store.Get(token); ok {
		t.Error("Get() found deleted session")
	}
}

func TestStore_Sweep(t *testing.T) {
	store, c := newStore(t, defaultConfig())

	store.Create(uuid.New())
	store.Create(uuid.New())
	c.Advance(30 * time.Minute)
	live, _, _ := store.Create(uuid.New())
	c.Advance(45 * time.Minute)

	if n := store.Sweep(); n != 2 {
		t.Errorf("Sweep() = %d, want 2", n)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
	if _, ok := store.Get(live); !ok {
		t.Error("Sweep() removed a live session")
	}
}

func TestStore_Start_SweepsUntilShutdown(t *testing.T) {
	cfg := defaultConfig()
	cfg.TTL = time.Millisecond
	cfg.SweepInterval = 5 * time.Millisecond

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewStore(cfg, logger)
	store.Create(uuid.New())

	lc := lifecycle.New()
	store.Start(lc)

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.Len() != 0 {
		t.Error("sweeper did not remove expired session")
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestStore_Cookies(t *testing.T) {
	cfg := defaultConfig()
	cfg.CookiePath = "/app"
	cfg.Secure = true
	store, c := newStore(t, cfg)

	token, sess, _ := store.Create(uuid.New())

	w := httptest.NewRecorder()
	store.SetCookie(w, token, sess.ExpiresAt)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != "chargepoint_session" || ck.Value != token {
		t.Errorf("cookie = %s=%s", ck.Name, ck.Value)
	}
	if ck.Path != "/app" || !ck.HttpOnly || !ck.Secure || ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie attributes = %+v", ck)
	}

	req := httptest.NewRequest(http.MethodGet, "/app/profile", nil)
	req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})

	if store.Token(req) != token {
		t.Errorf("Token() = %q, want %q", store.Token(req), token)
	}
	if !store.Authenticated(req) {
		t.Error("Authenticated() = false, want true")
	}

	c.Advance(2 * time.Hour)
	if store.Authenticated(req) {
		t.Error("Authenticated() = true after expiry")
	}

	w = httptest.NewRecorder()
	store.ClearCookie(w)
	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("ClearCookie() = %+v, want expired cookie", cleared)
	}
}

func TestStore_DefaultCookiePath(t *testing.T) {
	store, _ := newStore(t, defaultConfig())

	w := httptest.NewRecorder()
	store.SetCookie(w, "token", time.Now().Add(time.Hour))

	if path := w.Result().Cookies()[0].Path; path != "/" {
		t.Errorf("Path = %q, want %q", path, "/")
	}
}

func TestStore_ImplementsAuthenticator(t *testing.T) {
	store, _ := newStore(t, defaultConfig())

	var auth web.Authenticator = store
	if auth.Authenticated(httptest.NewRequest(http.MethodGet, "/", nil)) {
		t.Error("Authenticated() = true without cookie")
	}
}
