package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/quokkabot/scriptscout/core"
	"github.com/quokkabot/scriptscout/logging"
)

// DefaultBaseURL is the public ScriptBlox script API root. Search requests
// go to <base>/search, detail requests to <base>/<id>.
const DefaultBaseURL = "https://scriptblox.com/api/script"

// userAgent is the fixed identifying header sent with every request. The
// upstream rejects requests without a browser-looking agent.
const userAgent = "Mozilla/5.0"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// BaseURL overrides the upstream API root, mainly for tests.
	BaseURL string
	// HTTPClient performs the actual requests. Defaults to a client with a
	// modest overall timeout; no retries happen above it.
	HTTPClient *http.Client
	// Logger records call outcomes. Defaults to NoOp.
	Logger logging.Logger
}

// Client is the stateless ScriptBlox catalog client. It issues two read-only
// GET queries (search-by-page, detail-by-id), never retries and never
// caches. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// Compile-time assertion that Client satisfies the domain contract.
var _ core.CatalogClient = (*Client)(nil)

// New constructs a Client with optional overrides.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{baseURL: opts.BaseURL, httpClient: opts.HTTPClient, logger: opts.Logger}
}

// searchResponse mirrors the upstream search payload. Only the fields we
// read are declared; everything else is ignored.
type searchResponse struct {
	Result struct {
		Scripts []struct {
			ID    string `json:"_id"`
			Title string `json:"title"`
		} `json:"scripts"`
	} `json:"result"`
}

// detailResponse mirrors the upstream detail payload. Pointer fields
// distinguish absent keys so placeholders can be substituted.
type detailResponse struct {
	Script struct {
		Title *string `json:"title"`
		Owner struct {
			Username *string `json:"username"`
		} `json:"owner"`
		Key         bool    `json:"key"`
		Description *string `json:"description"`
		Body        *string `json:"script"`
	} `json:"script"`
}

// Search returns one page of summaries for a query. A missing or empty
// upstream list is a valid zero-result outcome, not an error.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) ([]core.ScriptSummary, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("max", strconv.Itoa(pageSize))

	var payload searchResponse
	if err := c.getJSON(ctx, "search", c.baseURL+"/search?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	summaries := make([]core.ScriptSummary, 0, len(payload.Result.Scripts))
	for _, s := range payload.Result.Scripts {
		title := s.Title
		if title == "" {
			title = core.PlaceholderTitle
		}
		summaries = append(summaries, core.ScriptSummary{ID: s.ID, Title: title})
	}
	return summaries, nil
}

// FetchDetail returns the full record for a catalog id, substituting
// placeholder text for any field the upstream payload left out.
func (c *Client) FetchDetail(ctx context.Context, id string) (core.ScriptDetail, error) {
	var payload detailResponse
	if err := c.getJSON(ctx, "detail", c.baseURL+"/"+url.PathEscape(id), &payload); err != nil {
		return core.ScriptDetail{}, err
	}

	sc := payload.Script
	return core.ScriptDetail{
		Title:       orPlaceholder(sc.Title, core.PlaceholderTitle),
		AuthorName:  orPlaceholder(sc.Owner.Username, core.PlaceholderAuthor),
		KeyRequired: sc.Key,
		Description: orPlaceholder(sc.Description, core.PlaceholderDescription),
		Body:        orPlaceholder(sc.Body, core.PlaceholderBody),
	}, nil
}

// getJSON performs a single GET and decodes the body, mapping every failure
// mode (transport, non-2xx status, malformed body) to a *core.RemoteError.
func (c *Client) getJSON(ctx context.Context, op, rawURL string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &core.RemoteError{Op: op, Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "op", op, "error", err)
		return &core.RemoteError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("catalog returned non-success status", "op", op, "status", resp.StatusCode)
		return &core.RemoteError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &core.RemoteError{Op: op, Cause: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug("catalog call completed", "op", op, "duration", time.Since(start))
	return nil
}

// orPlaceholder returns the pointed-to string unless the field was absent or
// blank upstream.
func orPlaceholder(s *string, placeholder string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}
