// Package desk keeps one check-in controller per front-desk device.
package desk

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nordicsun/gooodmorning/internal/checkin"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Config struct {
	CookieName  string
	IdleTimeout time.Duration
	// Secure marks the session cookie HTTPS-only.
	Secure bool
	// Clock for testing (nil uses real time)
	Clock Clock
}

type session struct {
	controller *checkin.Controller
	lastSeen   time.Time
}

// Store maps desk session IDs to controllers. Sessions live in memory only.
type Store struct {
	config Config
	clock  Clock
	client checkin.Client

	mu       sync.Mutex
	sessions map[string]*session
}

func NewStore(client checkin.Client, cfg Config) *Store {
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Store{
		config:   cfg,
		clock:    clock,
		client:   client,
		sessions: make(map[string]*session),
	}
}

// Controller returns the controller for id, creating a new session when id
// is empty, malformed or unknown. The returned ID is the one to hand back to
// the device.
func (s *Store) Controller(id string) (*checkin.Controller, string) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if sess := s.sessions[id]; sess != nil {
			sess.lastSeen = now
			return sess.controller, id
		}
	}

	id = uuid.New().String()
	s.sessions[id] = &session{
		controller: checkin.NewController(s.client),
		lastSeen:   now,
	}
	return s.sessions[id].controller, id
}

// Sweep drops sessions idle for longer than the configured timeout and
// returns how many were removed.
func (s *Store) Sweep() int {
	if s.config.IdleTimeout <= 0 {
		return 0
	}
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.config.IdleTimeout {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Middleware attaches the device's controller to the request context and
// issues a session cookie when the device has none.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var current string
		if cookie, err := r.Cookie(s.config.CookieName); err == nil {
			current = cookie.Value
		}

		controller, id := s.Controller(current)
		if id != current {
			log.Ctx(r.Context()).Debug().Str("desk_session", id).Msg("Desk session started")
			http.SetCookie(w, &http.Cookie{
				Name:     s.config.CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.config.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(ContextWithController(r.Context(), controller)))
	})
}

type contextKey struct{}

func ContextWithController(ctx context.Context, controller *checkin.Controller) context.Context {
	return context.WithValue(ctx, contextKey{}, controller)
}

// ControllerFromContext returns the desk controller, or nil outside a desk session.
func ControllerFromContext(ctx context.Context) *checkin.Controller {
	controller, _ := ctx.Value(contextKey{}).(*checkin.Controller)
	return controller
}
