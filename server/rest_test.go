package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnreader/pkg/domain"
	"github.com/umputun/hnreader/pkg/remote"
	"github.com/umputun/hnreader/server/mocks"
)

func TestServer_feedPageHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		FetchFeedPageFunc: func(_ context.Context, category domain.FeedCategory, page int) (domain.FeedPage, error) {
			return domain.FeedPage{Category: category, Page: page, HasMore: true, NextPage: page + 1,
				Articles: []domain.FeedArticle{{ID: 11, Title: "first"}, {ID: 22, Title: "second"}}}, nil
		},
	}
	srv := New(testConfig(), Services{Feeds: feeds}, "test", false)

	w := serve(srv, "GET", "/api/v1/feeds/best?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	var page domain.FeedPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, domain.FeedBest, page.Category)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.NextPage)
	assert.True(t, page.HasMore)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, int64(11), page.Articles[0].ID)

	require.Len(t, feeds.FetchFeedPageCalls(), 1)
	assert.Equal(t, domain.FeedBest, feeds.FetchFeedPageCalls()[0].Category)
	assert.Equal(t, 2, feeds.FetchFeedPageCalls()[0].Page)

	w = serve(srv, "GET", "/api/v1/feeds/top")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, feeds.FetchFeedPageCalls()[1].Page, "page defaults to 0")

	t.Run("bad requests", func(t *testing.T) {
		for _, target := range []string{"/api/v1/feeds/jobs", "/api/v1/feeds/top?page=x", "/api/v1/feeds/top?page=-1"} {
			w := serve(srv, "GET", target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
		assert.Len(t, feeds.FetchFeedPageCalls(), 2)
	})

	t.Run("cancelled", func(t *testing.T) {
		feeds.FetchFeedPageFunc = func(context.Context, domain.FeedCategory, int) (domain.FeedPage, error) {
			return domain.FeedPage{}, fmt.Errorf("sync top: %w", context.Canceled)
		}
		w := serve(srv, "GET", "/api/v1/feeds/top")
		assert.Equal(t, statusClientClosed, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		feeds.FetchFeedPageFunc = func(context.Context, domain.FeedCategory, int) (domain.FeedPage, error) {
			return domain.FeedPage{}, errors.New("disk I/O error")
		}
		w := serve(srv, "GET", "/api/v1/feeds/new?page=1")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch new page 1"}`, w.Body.String())
	})
}

func TestServer_refreshFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		RefreshFeedFunc: func(_ context.Context, category domain.FeedCategory) (domain.FeedPage, error) {
			return domain.FeedPage{Category: category, Articles: []domain.FeedArticle{}, Stale: true}, nil
		},
	}
	srv := New(testConfig(), Services{Feeds: feeds}, "test", false)

	w := serve(srv, "POST", "/api/v1/feeds/ask/refresh")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"category":"ask","page":0,"articles":[],"has_more":false,"next_page":0,"stale":true}`, w.Body.String())
	require.Len(t, feeds.RefreshFeedCalls(), 1)
	assert.Equal(t, domain.FeedAsk, feeds.RefreshFeedCalls()[0].Category)

	w = serve(srv, "POST", "/api/v1/feeds/show/refresh")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, feeds.RefreshFeedCalls(), 1)
}

func TestServer_articleLists(t *testing.T) {
	articles := []domain.FeedArticle{{ID: 1, Title: "one"}}
	store := &mocks.StoreMock{
		GetSavedArticlesFunc:    func(context.Context, int) ([]domain.FeedArticle, error) { return articles, nil },
		GetFavoriteArticlesFunc: func(context.Context, int) ([]domain.FeedArticle, error) { return nil, nil },
		GetUnreadArticlesFunc:   func(context.Context, int) ([]domain.FeedArticle, error) { return articles, nil },
		SearchFeedArticlesFunc:  func(context.Context, string, int) ([]domain.FeedArticle, error) { return articles, nil },
		StatsFunc: func(context.Context) (domain.Stats, error) {
			return domain.Stats{Total: 10, Saved: 2, Favorite: 1, Unread: 7, Read: 3}, nil
		},
	}
	srv := New(testConfig(), Services{Store: store}, "test", false)

	w := serve(srv, "GET", "/api/v1/articles/saved?limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"one"`)
	assert.Equal(t, 5, store.GetSavedArticlesCalls()[0].Limit)

	w = serve(srv, "GET", "/api/v1/articles/favorites")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
	assert.Equal(t, defaultListLimit, store.GetFavoriteArticlesCalls()[0].Limit)

	w = serve(srv, "GET", "/api/v1/articles/unread")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.GetUnreadArticlesCalls(), 1)

	w = serve(srv, "GET", "/api/v1/articles/saved?limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(srv, "GET", "/api/v1/articles/search?q=rust&limit=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rust", store.SearchFeedArticlesCalls()[0].Query)
	assert.Equal(t, 3, store.SearchFeedArticlesCalls()[0].Limit)

	w = serve(srv, "GET", "/api/v1/articles/search?q=+")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(srv, "GET", "/api/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":10,"saved":2,"favorite":1,"unread":7,"read":3}`, w.Body.String())
}

func TestServer_articleHandler(t *testing.T) {
	store := &mocks.StoreMock{
		GetFeedArticleFunc: func(_ context.Context, id int64) (*domain.FeedArticle, error) {
			if id == 42 {
				return &domain.FeedArticle{ID: 42, Title: "answer"}, nil
			}
			return nil, fmt.Errorf("get feed article %d: %w", id, domain.ErrNotFound)
		},
	}
	srv := New(testConfig(), Services{Store: store}, "test", false)

	w := serve(srv, "GET", "/api/v1/articles/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"answer"`)

	w = serve(srv, "GET", "/api/v1/articles/43")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, "GET", "/api/v1/articles/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_articleActionHandler(t *testing.T) {
	var got []string
	record := func(name string) func(context.Context, int64) error {
		return func(_ context.Context, id int64) error {
			got = append(got, fmt.Sprintf("%s:%d", name, id))
			return nil
		}
	}
	actions := &mocks.InteractionsMock{
		MarkReadFunc:   record("read"),
		MarkUnreadFunc: record("unread"),
		SaveFunc:       record("save"),
		UnsaveFunc:     record("unsave"),
		FavoriteFunc:   record("favorite"),
		UnfavoriteFunc: record("unfavorite"),
		DeleteFunc:     record("delete"),
	}
	srv := New(testConfig(), Services{Actions: actions}, "test", false)

	for _, action := range []string{"read", "unread", "save", "unsave", "favorite", "unfavorite"} {
		w := serve(srv, "POST", "/api/v1/articles/7/"+action)
		require.Equal(t, http.StatusOK, w.Code, action)
		assert.JSONEq(t, fmt.Sprintf(`{"id":7,"action":%q}`, action), w.Body.String())
	}
	w := serve(srv, "DELETE", "/api/v1/articles/7")
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, []string{"read:7", "unread:7", "save:7", "unsave:7", "favorite:7", "unfavorite:7", "delete:7"}, got)

	w = serve(srv, "POST", "/api/v1/articles/7/like")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = serve(srv, "POST", "/api/v1/articles/x/read")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = serve(srv, "DELETE", "/api/v1/articles/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, got, 7)

	actions.SaveFunc = func(context.Context, int64) error { return errors.New("database is locked") }
	w = serve(srv, "POST", "/api/v1/articles/7/save")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_searchHandlers(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		SyncSearchFeedFunc: func(context.Context, int) ([]domain.SearchArticle, error) {
			return []domain.SearchArticle{{ID: "101", Title: "hit"}}, nil
		},
	}
	store := &mocks.StoreMock{
		GetSearchFavoritesFunc: func(context.Context) ([]domain.SearchArticle, error) {
			return []domain.SearchArticle{{ID: "fav"}}, nil
		},
		GetSearchDeletedFunc: func(context.Context) ([]domain.SearchArticle, error) { return nil, nil },
	}
	actions := &mocks.InteractionsMock{
		DeleteSearchFunc:         func(context.Context, string) error { return nil },
		RestoreSearchFunc:        func(context.Context, string) error { return nil },
		ToggleSearchFavoriteFunc: func(context.Context, string) error { return nil },
	}
	srv := New(testConfig(), Services{Feeds: feeds, Store: store, Actions: actions}, "test", false)

	w := serve(srv, "GET", "/api/v1/search?limit=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"101"`)
	assert.Equal(t, 10, feeds.SyncSearchFeedCalls()[0].Limit)

	w = serve(srv, "GET", "/api/v1/search")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, feeds.SyncSearchFeedCalls()[1].Limit)

	w = serve(srv, "GET", "/api/v1/search?limit=-3")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(srv, "GET", "/api/v1/search/favorites")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"fav"`)

	w = serve(srv, "GET", "/api/v1/search/deleted")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	for _, action := range []string{"delete", "restore", "favorite"} {
		w := serve(srv, "POST", "/api/v1/search/abc/"+action)
		require.Equal(t, http.StatusOK, w.Code, action)
	}
	assert.Equal(t, "abc", actions.DeleteSearchCalls()[0].Id)
	assert.Equal(t, "abc", actions.RestoreSearchCalls()[0].Id)
	assert.Equal(t, "abc", actions.ToggleSearchFavoriteCalls()[0].Id)

	w = serve(srv, "POST", "/api/v1/search/abc/unknown")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	t.Run("cancelled sync", func(t *testing.T) {
		feeds.SyncSearchFeedFunc = func(context.Context, int) ([]domain.SearchArticle, error) {
			return nil, fmt.Errorf("sync search feed: %w", context.Canceled)
		}
		w := serve(srv, "GET", "/api/v1/search")
		assert.Equal(t, statusClientClosed, w.Code)
	})
}

func TestServer_userHandler(t *testing.T) {
	users := &mocks.UserProviderMock{
		FetchUserFunc: func(_ context.Context, name string) (*domain.User, error) {
			switch name {
			case "pg":
				return &domain.User{ID: "pg", Karma: 155111}, nil
			case "ghost":
				return nil, fmt.Errorf("user ghost: %w", domain.ErrNotFound)
			default:
				return nil, fmt.Errorf("get user: %w", &remote.StatusError{Code: 503, URL: "http://hn/user"})
			}
		},
	}
	srv := New(testConfig(), Services{Users: users}, "test", false)

	w := serve(srv, "GET", "/api/v1/users/pg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"pg","created":0,"karma":155111}`, w.Body.String())

	w = serve(srv, "GET", "/api/v1/users/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, "GET", "/api/v1/users/flaky")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Server error: 503"}`, w.Body.String())

	t.Run("no provider", func(t *testing.T) {
		srv := New(testConfig(), Services{}, "test", false)
		w := serve(srv, "GET", "/api/v1/users/pg")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3&bad=x", http.NoBody)
	v, err := intParam(r, "page", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = intParam(r, "missing", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = intParam(r, "bad", 0)
	require.Error(t, err)
}
