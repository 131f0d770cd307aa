package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Interaction tokens are the opaque callback identifiers attached to rendered
// buttons. The controller accepts exactly these shapes and ignores anything
// else:
//
//	next_page
//	prev_page
//	detail_<1-based index>
const (
	TokenNextPage = "next_page"
	TokenPrevPage = "prev_page"

	tokenSelectPrefix = "detail_"
)

// ActionKind enumerates the navigation commands a token can encode.
type ActionKind int

const (
	// ActionNextPage advances the page cursor.
	ActionNextPage ActionKind = iota
	// ActionPrevPage steps the page cursor back.
	ActionPrevPage
	// ActionSelect resolves a 1-based result index to a detail fetch.
	ActionSelect
)

// Action is a parsed interaction token. Index is meaningful only for
// ActionSelect.
type Action struct {
	Kind  ActionKind
	Index int
}

// SelectToken renders the interaction token for the i-th (1-based) result on
// the current page.
func SelectToken(i int) string {
	return fmt.Sprintf("%s%d", tokenSelectPrefix, i)
}

// ParseToken decodes an interaction token into an Action. Tokens that match
// none of the accepted shapes return ok=false; callers ignore them
// gracefully rather than erroring.
func ParseToken(token string) (Action, bool) {
	switch {
	case token == TokenNextPage:
		return Action{Kind: ActionNextPage}, true
	case token == TokenPrevPage:
		return Action{Kind: ActionPrevPage}, true
	case strings.HasPrefix(token, tokenSelectPrefix):
		idx, err := strconv.Atoi(strings.TrimPrefix(token, tokenSelectPrefix))
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: ActionSelect, Index: idx}, true
	default:
		return Action{}, false
	}
}
