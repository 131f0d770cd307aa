package core

// Placeholder text substituted for catalog fields the upstream payload left
// out. The client never fails on a missing key; it fills these in instead.
const (
	PlaceholderTitle       = "Untitled"
	PlaceholderAuthor      = "Unknown author"
	PlaceholderDescription = "No description"
	PlaceholderBody        = "No content"
)

// ScriptSummary is the minimal catalog entry returned by a search page:
// the upstream-assigned identity plus a display label. Summaries are
// index-addressable (1-based) within the current page only; indices are not
// stable across page changes.
type ScriptSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ScriptDetail is the full catalog entry returned by a detail lookup. Every
// field is populated; absent upstream values carry the placeholder text.
type ScriptDetail struct {
	Title       string `json:"title"`
	AuthorName  string `json:"author_name"`
	KeyRequired bool   `json:"key_required"`
	Description string `json:"description"`
	Body        string `json:"body"`
}
