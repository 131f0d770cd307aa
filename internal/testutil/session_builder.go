package testutil

import (
	"fmt"

	"github.com/quokkabot/scriptscout/core"
)

// SessionBuilder helps construct sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("jailbreak").Page(2).Results(Summaries(3)...).Build()
type SessionBuilder struct {
	query   string
	page    int
	results []core.ScriptSummary
}

// NewSessionBuilder creates a new builder for a session with the given
// query. Use chainable methods (Page, Results) then call Build.
func NewSessionBuilder(query string) *SessionBuilder {
	return &SessionBuilder{query: query, page: 1}
}

// Page sets the page cursor on the resulting session (chainable).
func (b *SessionBuilder) Page(p int) *SessionBuilder {
	b.page = p
	return b
}

// Results sets the fetched result set on the resulting session (chainable).
func (b *SessionBuilder) Results(results ...core.ScriptSummary) *SessionBuilder {
	b.results = append(b.results, results...)
	return b
}

// Build returns a *core.Session with pre-populated page and results.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.query)
	s.Page = b.page
	s.Results = append(s.Results, b.results...)
	return s
}

// Summaries generates n distinct script summaries with predictable ids
// ("id-1"..) and titles ("Script 1"..).
func Summaries(n int) []core.ScriptSummary {
	out := make([]core.ScriptSummary, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, core.ScriptSummary{ID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("Script %d", i)})
	}
	return out
}
