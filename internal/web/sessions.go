package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/elys-network/poolboard/internal/view"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "poolboard_session"

	// DefaultMaxSessions caps the store when no limit is configured.
	DefaultMaxSessions = 10000
)

// session is one reader's view state. mu serializes requests of the same
// reader since a PoolListView is single-owner.
type session struct {
	mu       sync.Mutex
	view     *view.PoolListView
	lastSeen time.Time
}

// SessionStore maps session ids to views. Sessions idle longer than ttl are
// evicted, and at most maxSessions are kept: creating one more drops the
// expired sessions first and then the least recently seen one.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*session
	ttl         time.Duration
	maxSessions int
	viewCfg     view.Config
	metrics     *Metrics
	now         func() time.Time
}

func NewSessionStore(ttl time.Duration, maxSessions int, viewCfg view.Config, metrics *Metrics) *SessionStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &SessionStore{
		sessions:    make(map[string]*session),
		ttl:         ttl,
		maxSessions: maxSessions,
		viewCfg:     viewCfg,
		metrics:     metrics,
		now:         time.Now,
	}
}

// acquire returns the live session for id, creating a new one (with a new id)
// when id is unknown or expired.
func (s *SessionStore) acquire(id string) (string, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		return id, sess
	}
	if id != "" {
		delete(s.sessions, id)
	}

	if len(s.sessions) >= s.maxSessions {
		s.makeRoom(now)
	}

	id = uuid.NewString()
	sess := &session{view: view.New(s.viewCfg), lastSeen: now}
	s.sessions[id] = sess
	s.updateGauge()

	webLogger.Debug().Str("session", id).Msg("Created view session")
	return id, sess
}

// Sweep drops every expired session and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.removeExpired(s.now())
	if removed > 0 {
		s.updateGauge()
		webLogger.Debug().Int("removed", removed).Int("remaining", len(s.sessions)).Msg("Evicted idle sessions")
	}
	return removed
}

// Len returns the number of sessions, expired ones included until the next sweep.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) removeExpired(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// makeRoom frees a slot for a new session.
func (s *SessionStore) makeRoom(now time.Time) {
	if s.removeExpired(now) > 0 {
		return
	}
	oldestID := ""
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		webLogger.Warn().
			Int("maxSessions", s.maxSessions).
			Str("session", oldestID).
			Msg("Session limit reached, evicted least recently seen session")
	}
}

func (s *SessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

func (s *SessionStore) updateGauge() {
	if s.metrics != nil {
		s.metrics.activeSessions.Set(float64(len(s.sessions)))
	}
}

// sessionFromRequest resolves the caller's session and refreshes its cookie.
func (s *SessionStore) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session {
	id := ""
	if c, err := r.Cookie(sessionCookieName); err == nil {
		id = c.Value
	}

	id, sess := s.acquire(id)
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if s.ttl > 0 {
		cookie.MaxAge = int(s.ttl.Seconds())
	}
	http.SetCookie(w, cookie)
	return sess
}
