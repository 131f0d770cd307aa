package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/quokkabot/scriptscout/core"
	"github.com/quokkabot/scriptscout/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// PageSize is the number of results requested per search page.
	PageSize int
	// Logger records state transitions and catalog call outcomes.
	// Defaults to NoOp.
	Logger logging.Logger
}

// Controller is the search session state machine. All handler methods are
// safe for concurrent use; events for the same user are serialized so a
// rapid double-tap cannot interleave a read-modify-write across the awaited
// catalog call, while distinct users proceed concurrently.
//
// Handlers return (reply, true) when there is something to deliver and
// (zero, false) for intentional silence (PrevPage at page 1, unrecognized
// tokens).
type Controller struct {
	store    core.SessionStore
	catalog  core.CatalogClient
	pageSize int
	logger   logging.Logger

	mu        sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// New constructs a Controller with optional overrides.
func New(store core.SessionStore, catalog core.CatalogClient, optFns ...func(o *Options)) *Controller {
	opts := Options{
		PageSize: core.DefaultPageSize,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Controller{
		store:     store,
		catalog:   catalog,
		pageSize:  opts.PageSize,
		logger:    opts.Logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// lockUser returns the mutex serializing events for a single user, creating
// it on first use. Locks are never evicted; one mutex per user seen is an
// accepted cost alongside the session map itself.
func (c *Controller) lockUser(userID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		c.userLocks[userID] = l
	}
	return l
}

// getSession looks up the user's session, mapping absence to
// core.ErrNoSession. Caller must hold the user's lock.
func (c *Controller) getSession(userID int64) (*core.Session, error) {
	sess, ok := c.store.Get(userID)
	if !ok {
		return nil, core.ErrNoSession
	}
	return sess, nil
}

// Greeting returns the static greeting sent in response to the start
// command.
func (c *Controller) Greeting() core.Reply {
	return core.Reply{Text: msgGreeting}
}

// StartSearch begins a fresh search for the user, discarding any prior
// session, and fetches page 1. A blank query yields a usage prompt and
// creates no session.
func (c *Controller) StartSearch(ctx context.Context, userID int64, query string) (core.Reply, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return core.Reply{Text: msgUsage}, true
	}

	l := c.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess := core.NewSession(query)
	c.logger.Info("search started", "user_id", userID, "query", query)
	return c.fetch(ctx, userID, sess), true
}

// NextPage advances the user's page cursor by one and fetches it. The
// cursor advances unconditionally; there is no upper bound check, so paging
// past the end simply keeps yielding the no-results reply.
func (c *Controller) NextPage(ctx context.Context, userID int64) (core.Reply, bool) {
	l := c.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess, err := c.getSession(userID)
	if err != nil {
		return core.Reply{Text: msgNoSession}, true
	}
	sess.Page++
	return c.fetch(ctx, userID, sess), true
}

// PrevPage steps the user's page cursor back and fetches. At page 1 the
// navigation is a deliberate no-op: no fetch, no reply.
func (c *Controller) PrevPage(ctx context.Context, userID int64) (core.Reply, bool) {
	l := c.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess, err := c.getSession(userID)
	if err != nil {
		return core.Reply{Text: msgNoSession}, true
	}
	if sess.Page <= 1 {
		return core.Reply{}, false
	}
	sess.Page--
	return c.fetch(ctx, userID, sess), true
}

// SelectIndex resolves the i-th (1-based) result on the current page to a
// detail fetch. Out-of-range indices yield a notice without mutating state;
// the detail fetch itself never changes page or results either way.
func (c *Controller) SelectIndex(ctx context.Context, userID int64, i int) (core.Reply, bool) {
	l := c.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess, err := c.getSession(userID)
	if err != nil {
		return core.Reply{Text: msgNoSession}, true
	}
	if i < 1 || i > len(sess.Results) {
		err := &core.InvalidIndexError{Index: i, Count: len(sess.Results)}
		c.logger.Warn("selection rejected", "user_id", userID, "error", err)
		return core.Reply{Text: msgInvalidIndex}, true
	}

	sess.Touch()
	c.store.Put(userID, sess)

	id := sess.Results[i-1].ID
	start := time.Now()
	detail, err := c.catalog.FetchDetail(ctx, id)
	if err != nil {
		c.logger.Error("detail fetch failed", "user_id", userID, "script_id", id, "error", err)
		return core.Reply{Text: msgDetailFailed + err.Error()}, true
	}
	c.logger.Debug("detail fetched", "user_id", userID, "script_id", id, "duration", time.Since(start))
	return renderDetail(detail), true
}

// HandleToken parses a raw interaction token and dispatches it. Tokens
// matching none of the accepted shapes are ignored gracefully.
func (c *Controller) HandleToken(ctx context.Context, userID int64, token string) (core.Reply, bool) {
	action, ok := core.ParseToken(token)
	if !ok {
		c.logger.Debug("ignoring unrecognized token", "user_id", userID, "token", token)
		return core.Reply{}, false
	}
	switch action.Kind {
	case core.ActionNextPage:
		return c.NextPage(ctx, userID)
	case core.ActionPrevPage:
		return c.PrevPage(ctx, userID)
	case core.ActionSelect:
		return c.SelectIndex(ctx, userID, action.Index)
	default:
		return core.Reply{}, false
	}
}

// fetch runs the shared page-fetch path: call the catalog for the session's
// query and page, persist the session and render the outcome. Caller must
// hold the user's lock.
//
// State rules:
//   - success: Results replaced with the fetched page
//   - empty: Results cleared, page keeps its new value so PrevPage can step
//     back to a page that had results
//   - failure: Results untouched; a page increment from the navigation that
//     triggered the fetch is not rolled back.
func (c *Controller) fetch(ctx context.Context, userID int64, sess *core.Session) core.Reply {
	sess.Touch()

	start := time.Now()
	results, err := c.catalog.Search(ctx, sess.Query, sess.Page, c.pageSize)
	if err != nil {
		c.store.Put(userID, sess)
		c.logger.Error("search failed", "user_id", userID, "query", sess.Query, "page", sess.Page, "error", err)
		return core.Reply{Text: msgSearchFailed + err.Error()}
	}
	c.logger.Debug("page fetched", "user_id", userID, "page", sess.Page, "results", len(results), "duration", time.Since(start))

	if len(results) == 0 {
		sess.Results = []core.ScriptSummary{}
		c.store.Put(userID, sess)
		return core.Reply{Text: msgNoResults}
	}

	sess.Results = results
	c.store.Put(userID, sess)
	return renderResults(sess.Query, sess.Page, results)
}
