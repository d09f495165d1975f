package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnreader/pkg/domain"
)

func testStoryClient(url string) *StoryClient {
	return NewStoryClient(ClientParams{BaseURL: url, Timeout: time.Second, MaxRetries: 2, RetryDelay: time.Millisecond})
}

// itemHandler serves /item/{id}.json with a generated story
func itemHandler(w http.ResponseWriter, r *http.Request) {
	var id int64
	if _, err := fmt.Sscanf(r.URL.Path, "/item/%d.json", &id); err != nil {
		http.NotFound(w, r)
		return
	}
	_, _ = fmt.Fprintf(w, `{"id":%d,"type":"story","by":"pg","time":1700000000,"title":"story %d","score":%d,"descendants":3,"kids":[1,2]}`,
		id, id, id)
}

func TestStoryClient_ListIDs(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`[33, 11, 22]`))
	}))
	defer ts.Close()

	client := testStoryClient(ts.URL + "/")
	for _, cat := range domain.Categories() {
		ids, err := client.ListIDs(context.Background(), cat)
		require.NoError(t, err)
		assert.Equal(t, []int64{33, 11, 22}, ids)
	}
	mu.Lock()
	assert.Equal(t, []string{"/topstories.json", "/newstories.json", "/beststories.json", "/askstories.json"}, paths)
	mu.Unlock()

	t.Run("unknown category makes no request", func(t *testing.T) {
		_, err := client.ListIDs(context.Background(), domain.FeedCategory("show"))
		require.ErrorIs(t, err, domain.ErrUnknownCategory)
		mu.Lock()
		assert.Len(t, paths, 4)
		mu.Unlock()
	})
}

func TestStoryClient_ListIDsRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[1]`))
	}))
	defer ts.Close()

	ids, err := testStoryClient(ts.URL).ListIDs(context.Background(), domain.FeedTop)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
	assert.Equal(t, int32(3), calls.Load())
}

func TestStoryClient_FetchItem(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/item/1.json":
			_, _ = w.Write([]byte(`{"id":1,"type":"story","by":"dhouston","time":1175714200,"title":"My YC app",
				"url":"http://www.getdropbox.com/u/2/screencast.html","score":111,"descendants":71,"kids":[8952,9224]}`))
		case "/item/2.json":
			_, _ = w.Write([]byte(`null`))
		case "/item/3.json":
			_, _ = w.Write([]byte(`{"id":3,"deleted":true}`))
		case "/item/4.json":
			_, _ = w.Write([]byte(`{"id":4,"dead":true,"title":"flagged"}`))
		case "/item/5.json":
			_, _ = w.Write([]byte(`{"id":5,"type":"ask","title":"Ask HN: ?","text":"<p>body</p>","by":"x","time":1}`))
		case "/item/6.json":
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`{not json`))
		}
	}))
	defer ts.Close()
	client := testStoryClient(ts.URL)
	ctx := context.Background()

	item, err := client.FetchItem(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "My YC app", item.Title)
	assert.Equal(t, "http://www.getdropbox.com/u/2/screencast.html", item.URL)
	assert.Equal(t, "dhouston", item.By)
	assert.Equal(t, int64(1175714200), item.Time)
	assert.Equal(t, 111, item.Score)
	require.NotNil(t, item.Descendants)
	assert.Equal(t, 71, *item.Descendants)
	assert.Equal(t, []int64{8952, 9224}, item.Kids)
	assert.Equal(t, domain.ItemStory, item.Type)

	for _, id := range []int64{2, 3, 4} {
		item, err = client.FetchItem(ctx, id)
		require.NoError(t, err, "id %d", id)
		assert.Nil(t, item, "id %d", id)
	}

	item, err = client.FetchItem(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemAsk, item.Type)
	assert.Equal(t, "<p>body</p>", item.Text)
	assert.Nil(t, item.Descendants)

	calls.Store(0)
	_, err = client.FetchItem(ctx, 6)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, int32(1), calls.Load(), "404 is not retried")

	calls.Store(0)
	_, err = client.FetchItem(ctx, 7)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "decode error is not retried")
}

func TestStoryClient_FetchItemRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		itemHandler(w, r)
	}))
	defer ts.Close()

	item, err := testStoryClient(ts.URL).FetchItem(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "story 9", item.Title)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStoryClient_Timeout(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`[1]`))
	}))
	defer ts.Close()

	client := NewStoryClient(ClientParams{BaseURL: ts.URL, Timeout: 50 * time.Millisecond, MaxRetries: 1, RetryDelay: time.Millisecond})
	_, err := client.ListIDs(context.Background(), domain.FeedNew)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load(), "timeout is retried")
	assert.Contains(t, ErrorMessage(err), "timeout")
}

func TestStoryClient_FetchItemsBatched(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	var mu sync.Mutex
	requested := map[string]int{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		mu.Lock()
		requested[r.URL.Path]++
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		if strings.HasSuffix(r.URL.Path, "/13.json") {
			w.WriteHeader(http.StatusNotFound) // dropped, not fatal
			return
		}
		if strings.HasSuffix(r.URL.Path, "/17.json") {
			_, _ = w.Write([]byte(`null`))
			return
		}
		itemHandler(w, r)
	}))
	defer ts.Close()

	ids := make([]int64, 0, 23)
	for i := int64(1); i <= 23; i++ {
		ids = append(ids, i)
	}

	res, err := testStoryClient(ts.URL).FetchItemsBatched(context.Background(), ids, 10, 3)
	require.NoError(t, err)

	assert.LessOrEqual(t, maxInFlight.Load(), int32(3))
	assert.Positive(t, maxInFlight.Load())
	mu.Lock()
	assert.Len(t, requested, 23)
	mu.Unlock()

	got := make([]int64, 0, len(res))
	for _, a := range res {
		got = append(got, a.ID)
	}
	want := make([]int64, 0, 21)
	for _, id := range ids {
		if id != 13 && id != 17 {
			want = append(want, id)
		}
	}
	assert.Equal(t, want, got, "result keeps input order")

	t.Run("empty ids", func(t *testing.T) {
		res, err := testStoryClient(ts.URL).FetchItemsBatched(context.Background(), nil, 10, 3)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestStoryClient_FetchItemsBatchedCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 5 {
			cancel() // cancel once the first chunk is in flight
		}
		itemHandler(w, r)
	}))
	defer ts.Close()

	ids := make([]int64, 100)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	start := time.Now()
	_, err := testStoryClient(ts.URL).FetchItemsBatched(ctx, ids, 20, 5)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(5), calls.Load(), "no calls after cancellation")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestStoryClient_UserAndPing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/pg.json":
			_, _ = w.Write([]byte(`{"id":"pg","created":1160418092,"karma":155111,"about":"Bug fixer.","submitted":[1,2,3]}`))
		case "/user/ghost.json":
			_, _ = w.Write([]byte(`null`))
		case "/maxitem.json":
			_, _ = w.Write([]byte(`41000000`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()
	client := testStoryClient(ts.URL)
	ctx := context.Background()

	user, err := client.FetchUser(ctx, "pg")
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: "pg", Created: 1160418092, Karma: 155111, About: "Bug fixer.", Submitted: []int64{1, 2, 3}}, user)

	_, err = client.FetchUser(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, client.Ping(ctx))
	ts.Close()
	assert.False(t, client.Ping(ctx))
}
