package core

import (
	"context"
	"time"
)

// DefaultPageSize is the number of catalog entries requested per search page
// when no override is supplied at wiring time.
const DefaultPageSize = 5

// CatalogClient performs read-only lookups against the upstream script
// catalog. Implementations are stateless and safe for concurrent use across
// distinct users.
//
// Contract:
//   - Search returns the summaries for one page; an empty page is a valid
//     result, not an error
//   - FetchDetail resolves a single catalog id to its full record,
//     substituting placeholder text for fields absent upstream
//   - Any transport failure or non-success HTTP status surfaces as a
//     *RemoteError; no retries or caching happen behind the interface.
type CatalogClient interface {
	// Search returns up to pageSize summaries for the given query and
	// 1-based page. A missing or empty upstream list yields a zero-length
	// slice and a nil error.
	Search(ctx context.Context, query string, page, pageSize int) ([]ScriptSummary, error)

	// FetchDetail returns the full catalog record for an id.
	FetchDetail(ctx context.Context, id string) (ScriptDetail, error)
}

// SessionStore maps a chat platform user id to that user's active search
// session. Semantics are last-write-wins per user; implementations must be
// safe for concurrent access but callers must not assume atomicity across a
// read-modify-write pair spanning a remote call.
type SessionStore interface {
	// Get returns the user's session, or ok=false when none exists.
	Get(userID int64) (*Session, bool)

	// Put stores the session for the user, overwriting any prior one.
	Put(userID int64, s *Session)
}

// SessionSweeper is an optional extension of SessionStore that supports
// evicting sessions untouched since a cutoff. Stores that cannot enumerate
// their contents simply do not implement it; callers type-assert at wiring
// time.
type SessionSweeper interface {
	// Sweep removes sessions whose LastAccess predates olderThan and
	// reports how many were removed.
	Sweep(olderThan time.Time) int
}
