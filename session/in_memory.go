package session

import (
	"sync"
	"time"

	"github.com/quokkabot/scriptscout/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping sessions
// in a process local map keyed by chat user id. It is safe for concurrent
// access; each returned session is cloned to prevent external mutation of
// internal state. Sessions survive only for the process lifetime.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[int64]*core.Session)}
}

// Get returns a clone of the user's session, or ok=false when none exists.
func (s *InMemoryStore) Get(userID int64) (*core.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	return sess.Clone(), true
}

// Put stores a clone of the session for the user, overwriting any prior one
// (last-write-wins).
func (s *InMemoryStore) Put(userID int64, sess *core.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess.Clone()
}

// Sweep removes sessions whose LastAccess predates olderThan and reports how
// many were removed. Bounds the otherwise unbounded growth of the map in a
// long-lived process.
func (s *InMemoryStore) Sweep(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastAccess.Before(olderThan) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
