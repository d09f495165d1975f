package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnreader/pkg/domain"
)

const searchPayload = `{
	"hits": [
		{"objectID":"101","created_at":"2024-05-01T10:00:00Z","created_at_i":1714557600,"title":"Swift 6 released",
		 "url":"https://swift.org/blog/6","author":"alice","points":120,"num_comments":40},
		{"objectID":"102","created_at":"2024-05-01T09:00:00Z","created_at_i":1714554000,"title":null,
		 "url":null,"story_title":"Kotlin multiplatform","story_url":"https://kotlinlang.org/kmp","author":"bob",
		 "points":null,"num_comments":null},
		{"objectID":"103","created_at":"2024-05-01T08:00:00Z","created_at_i":1714550400,"title":"Show HN: no link",
		 "url":"","author":"carol","points":3,"num_comments":0},
		{"objectID":"104","created_at":"2024-05-01T07:00:00Z","created_at_i":1714546800,"title":"",
		 "url":"https://example.com","author":"dave","points":1,"num_comments":0}
	],
	"nbHits": 1500, "page": 0, "nbPages": 50, "hitsPerPage": 30
}`

func TestSearchClient_FetchSearchPage(t *testing.T) {
	var mu sync.Mutex
	var query url.Values
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		query, path = r.URL.Query(), r.URL.Path
		mu.Unlock()
		_, _ = w.Write([]byte(searchPayload))
	}))
	defer ts.Close()

	client := NewSearchClient(SearchParams{
		ClientParams: ClientParams{BaseURL: ts.URL, Timeout: time.Second, MaxRetries: 1, RetryDelay: time.Millisecond},
		Query:        "mobile",
		HitsPerPage:  30,
	})

	page, err := client.FetchSearchPage(context.Background(), 0)
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, "/search_by_date", path)
	assert.Equal(t, "mobile", query.Get("query"))
	assert.Equal(t, "0", query.Get("page"))
	assert.Equal(t, "30", query.Get("hitsPerPage"))
	assert.Equal(t, "story", query.Get("tags"))
	mu.Unlock()

	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 1500, page.TotalHits)
	assert.Equal(t, 50, page.TotalPages)
	require.Len(t, page.Hits, 2, "hits without title or url dropped")

	assert.Equal(t, domain.SearchArticle{
		ID: "101", Title: "Swift 6 released", URL: "https://swift.org/blog/6", Author: "alice",
		Points: 120, NumComments: 40, CreatedAt: 1714557600, CreatedAtString: "2024-05-01T10:00:00Z",
	}, page.Hits[0])

	assert.Equal(t, "Kotlin multiplatform", page.Hits[1].Title)
	assert.Equal(t, "https://kotlinlang.org/kmp", page.Hits[1].URL)
	assert.Zero(t, page.Hits[1].Points)
	assert.Zero(t, page.Hits[1].NumComments)
}

func TestSearchClient_FetchSearchPageErrors(t *testing.T) {
	var calls atomic.Int32
	status := atomic.Int32{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(int(status.Load()))
	}))
	defer ts.Close()

	client := NewSearchClient(SearchParams{
		ClientParams: ClientParams{BaseURL: ts.URL, Timeout: time.Second, MaxRetries: 2, RetryDelay: time.Millisecond},
		Query:        "mobile",
	})

	status.Store(http.StatusServiceUnavailable)
	_, err := client.FetchSearchPage(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "Server error: 503", ErrorMessage(err))

	calls.Store(0)
	status.Store(http.StatusBadRequest)
	_, err = client.FetchSearchPage(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls.Store(0)
		_, err := client.FetchSearchPage(ctx, 0)
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls.Load())
	})
}

func TestSearchClient_Ping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("hitsPerPage"))
		_, _ = w.Write([]byte(`{"hits":[]}`))
	}))
	defer ts.Close()

	client := NewSearchClient(SearchParams{ClientParams: ClientParams{BaseURL: ts.URL, Timeout: time.Second}})
	assert.True(t, client.Ping(context.Background()))
}
