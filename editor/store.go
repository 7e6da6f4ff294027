// ABOUTME: In-memory session store keyed by browser profile with TTL cleanup and capacity limits.
// ABOUTME: Thread-safe storage for managing active editor sessions over a shared slot backend.
package editor

import (
	"sync"
	"time"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/store"
)

// SessionStore holds one session per active browser profile.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	ttl         time.Duration
	backend     store.Backend
	settings    controller.Settings
}

// NewSessionStore creates a new session store over a slot backend.
func NewSessionStore(backend store.Backend, settings controller.Settings, maxSessions int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		ttl:         ttl,
		backend:     backend,
		settings:    settings,
	}
}

// Open returns the session for profile, creating it when missing, and updates its LastAccess time.
func (s *SessionStore) Open(profile string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[profile]; ok {
		sess.LastAccess = time.Now()
		return sess
	}

	// Check capacity
	if len(s.sessions) >= s.maxSessions {
		// Evict oldest session
		var oldestID string
		var oldestTime time.Time
		for id, sess := range s.sessions {
			if oldestTime.IsZero() || sess.LastAccess.Before(oldestTime) {
				oldestID = id
				oldestTime = sess.LastAccess
			}
		}
		delete(s.sessions, oldestID)
	}

	now := time.Now()
	rec := &Recorder{}
	sess := &Session{
		Profile:    profile,
		ctrl:       controller.New(rec, store.Scope(s.backend, profile), rec, s.settings),
		rec:        rec,
		CreatedAt:  now,
		LastAccess: now,
	}

	s.sessions[profile] = sess
	return sess
}

// Get retrieves a session by profile without creating one.
func (s *SessionStore) Get(profile string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[profile]
	return sess, ok
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup removes sessions older than TTL
func (s *SessionStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// StartCleanup starts a background cleanup goroutine and returns a stop function
func (s *SessionStore) StartCleanup(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
