package core

import "time"

// Session is the per-user record of an active catalog search: the query that
// started it, the current page cursor and the most recently fetched result
// set. Sessions are plain values; stores clone on read/write and the
// controller serializes access per user, so no internal locking is needed.
//
// Contract:
//   - Page is always >= 1
//   - Results mirror the most recently fetched page; an index into Results
//     is valid only until the next page navigation or new search
//   - Query is immutable for the session's lifetime; a new search replaces
//     the whole session.
type Session struct {
	Query      string          `json:"query"`
	Page       int             `json:"page"`
	Results    []ScriptSummary `json:"results"`
	Created    time.Time       `json:"created"`
	LastAccess time.Time       `json:"last_access"`
}

// NewSession creates a fresh session for a query, positioned at page 1 with
// no results fetched yet.
func NewSession(query string) *Session {
	now := time.Now()
	return &Session{Query: query, Page: 1, Results: []ScriptSummary{}, Created: now, LastAccess: now}
}

// Touch records an access so idle-session sweeps can spare active users.
func (s *Session) Touch() {
	s.LastAccess = time.Now()
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	clone := &Session{Query: s.Query, Page: s.Page, Results: make([]ScriptSummary, len(s.Results)), Created: s.Created, LastAccess: s.LastAccess}
	copy(clone.Results, s.Results)
	return clone
}
