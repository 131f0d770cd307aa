package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quokkabot/scriptscout/core"
)

// User-facing message text. Kept in one place so the controller tests can
// assert on outcomes without duplicating copy.
const (
	msgGreeting     = "Hi! Use /search <keywords> to find scripts."
	msgUsage        = "Please provide a search term, e.g. /search jailbreak"
	msgNoSession    = "No active search. Use /search <keywords> to get started."
	msgNoResults    = "No scripts found."
	msgInvalidIndex = "Invalid result number."
	msgSearchFailed = "Search failed: "
	msgDetailFailed = "Could not fetch script details: "
)

// renderResults builds the page listing reply: a header naming the query and
// page, one numbered line per result, and the navigation keyboard. Layout:
// an optional previous row (only past page 1), one select button per result
// labeled with its 1-based index, and an unconditional next row; the
// upstream gives no page count, so next is always offered.
func renderResults(query string, page int, results []core.ScriptSummary) core.Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for %q (page %d):", query, page)
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s", i+1, r.Title)
	}

	var keyboard [][]core.Button
	if page > 1 {
		keyboard = append(keyboard, []core.Button{{Label: "<< Prev", Token: core.TokenPrevPage}})
	}
	selects := make([]core.Button, 0, len(results))
	for i := 1; i <= len(results); i++ {
		selects = append(selects, core.Button{Label: strconv.Itoa(i), Token: core.SelectToken(i)})
	}
	keyboard = append(keyboard, selects)
	keyboard = append(keyboard, []core.Button{{Label: "Next >>", Token: core.TokenNextPage}})

	return core.Reply{Text: b.String(), Keyboard: keyboard}
}

// renderDetail formats a full catalog record as a single text block.
func renderDetail(d core.ScriptDetail) core.Reply {
	key := "no"
	if d.KeyRequired {
		key = "yes"
	}
	text := fmt.Sprintf(
		"Title: %s\nAuthor: %s\nKey required: %s\nDescription: %s\n\nScript:\n%s",
		d.Title, d.AuthorName, key, d.Description, d.Body,
	)
	return core.Reply{Text: text}
}
