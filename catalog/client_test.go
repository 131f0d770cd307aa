package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quokkabot/scriptscout/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(func(o *Options) {
		o.BaseURL = srv.URL
		o.HTTPClient = srv.Client()
	})
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"result":{"scripts":[
			{"_id":"abc","title":"Blox Fruits Hub"},
			{"_id":"def","title":""},
			{"_id":"ghi","title":"Jailbreak Auto Farm"}
		]}}`))
	})

	results, err := client.Search(context.Background(), "blox fruits", 2, 5)
	require.NoError(t, err)

	assert.Equal(t, "Mozilla/5.0", gotUA)
	assert.Contains(t, gotQuery, "q=blox+fruits")
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "max=5")

	require.Len(t, results, 3)
	assert.Equal(t, core.ScriptSummary{ID: "abc", Title: "Blox Fruits Hub"}, results[0])
	// A summary missing its title gets the placeholder, not an empty label.
	assert.Equal(t, core.PlaceholderTitle, results[1].Title)
	assert.Equal(t, "ghi", results[2].ID)
}

func TestClient_Search_EmptyIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty list", body: `{"result":{"scripts":[]}}`},
		{name: "absent list", body: `{"result":{}}`},
		{name: "absent result", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			results, err := client.Search(context.Background(), "nothing", 1, 5)
			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestClient_Search_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Search(context.Background(), "q", 1, 5)
	require.Error(t, err)

	var remote *core.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "search", remote.Op)
	assert.Equal(t, http.StatusServiceUnavailable, remote.Status)
}

func TestClient_Search_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(func(o *Options) { o.BaseURL = srv.URL })
	_, err := client.Search(context.Background(), "q", 1, 5)

	var remote *core.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, 0, remote.Status)
	assert.Error(t, remote.Cause)
}

func TestClient_Search_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Search(context.Background(), "q", 1, 5)

	var remote *core.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "search", remote.Op)
}

func TestClient_FetchDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/abc123", r.URL.Path)
		_, _ = w.Write([]byte(`{"script":{
			"title":"Blox Fruits Hub",
			"owner":{"username":"scripter42"},
			"key":true,
			"description":"Auto farm and more",
			"script":"print(\"hi\")"
		}}`))
	})

	detail, err := client.FetchDetail(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, core.ScriptDetail{
		Title:       "Blox Fruits Hub",
		AuthorName:  "scripter42",
		KeyRequired: true,
		Description: "Auto farm and more",
		Body:        `print("hi")`,
	}, detail)
}

func TestClient_FetchDetail_MissingFieldsGetPlaceholders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"script":{}}`))
	})

	detail, err := client.FetchDetail(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, core.PlaceholderTitle, detail.Title)
	assert.Equal(t, core.PlaceholderAuthor, detail.AuthorName)
	assert.False(t, detail.KeyRequired)
	assert.Equal(t, core.PlaceholderDescription, detail.Description)
	assert.Equal(t, core.PlaceholderBody, detail.Body)
}

func TestClient_FetchDetail_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchDetail(context.Background(), "missing")

	var remote *core.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "detail", remote.Op)
	assert.Equal(t, http.StatusNotFound, remote.Status)
}

func TestClient_FetchDetail_EscapesID(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"script":{}}`))
	})

	_, err := client.FetchDetail(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/a%2Fb%20c", gotPath)
}
