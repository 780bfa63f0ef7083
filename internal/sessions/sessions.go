// Package sessions tracks signed-in users with opaque cookie tokens held in
// memory. It implements web.Authenticator for the navigation guard.
package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/pkg/lifecycle"
)

const tokenSize = 32

// Config controls session lifetime and the cookie carrying the token.
type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
	CookieName    string
	CookiePath    string
	Secure        bool
}

// Session binds a user to a token until ExpiresAt.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// Store is a concurrency-safe in-memory session store.
type Store struct {
	mu     sync.Mutex
	items  map[string]Session
	cfg    Config
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(cfg Config, logger *slog.Logger, opts ...Option) *Store {
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	s := &Store{
		items:  make(map[string]Session),
		cfg:    cfg,
		now:    time.Now,
		logger: logger.With("system", "sessions"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a session for userID and returns its token.
func (s *Store) Create(userID uuid.UUID) (string, Session, error) {
	token, err := randomToken()
	if err != nil {
		return "", Session{}, err
	}
	entry := Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.cfg.TTL),
	}

	s.mu.Lock()
	s.items[token] = entry
	s.mu.Unlock()

	s.logger.Info("session created", "session", entry.ID, "user", userID, "expires", entry.ExpiresAt.Format(time.RFC3339))
	return token, entry, nil
}

// Get returns the live session for token. Expired sessions are removed.
func (s *Store) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[token]
	if !ok {
		return Session{}, false
	}
	if !s.now().Before(entry.ExpiresAt) {
		delete(s.items, token)
		s.logger.Info("session expired", "session", entry.ID)
		return Session{}, false
	}
	return entry, true
}

// Delete ends the session for token, if any.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	entry, ok := s.items[token]
	delete(s.items, token)
	s.mu.Unlock()

	if ok {
		s.logger.Info("session deleted", "session", entry.ID)
	}
}

// Sweep removes every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, entry := range s.items {
		if !now.Before(entry.ExpiresAt) {
			delete(s.items, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, including unswept expired ones.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Start runs the periodic sweeper until lc shuts down.
func (s *Store) Start(lc *lifecycle.Coordinator) {
	if s.cfg.SweepInterval <= 0 {
		return
	}
	lc.OnShutdown(func() {
		s.sweepLoop(lc.Context())
	})
}

func (s *Store) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("expired sessions swept", "count", n)
			}
		}
	}
}

// SetCookie writes the session cookie for token.
func (s *Store) SetCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     s.cfg.CookiePath,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (s *Store) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     s.cfg.CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token carried by r, if any.
func (s *Store) Token(r *http.Request) string {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Authenticated reports whether r carries a live session.
func (s *Store) Authenticated(r *http.Request) bool {
	_, ok := s.Get(s.Token(r))
	return ok
}

func randomToken() (string, error) {
	buf := make([]byte, tokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
