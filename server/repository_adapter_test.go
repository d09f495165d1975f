package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnreader/pkg/domain"
	"github.com/umputun/hnreader/pkg/repository"
)

func TestRepositoryAdapter(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Feed.BulkUpsertFeedArticles(ctx, domain.FeedTop, []domain.FeedArticle{
		{ID: 1, Title: "Rust in production", Time: 100, Type: domain.ItemStory},
		{ID: 2, Title: "Go generics", Time: 200, Type: domain.ItemStory},
	}))
	require.NoError(t, repos.Feed.SetInteractionFlag(ctx, 1, domain.FlagSaved, true, nil))
	require.NoError(t, repos.Feed.SetInteractionFlag(ctx, 2, domain.FlagFavorite, true, nil))
	require.NoError(t, repos.Search.UpsertSearchArticles(ctx, []domain.SearchArticle{
		{ID: "a", Title: "hit a", URL: "https://a.example.com", CreatedAt: 1},
		{ID: "b", Title: "hit b", URL: "https://b.example.com", CreatedAt: 2},
	}))
	require.NoError(t, repos.Search.ToggleFavorite(ctx, "a"))
	require.NoError(t, repos.Search.SoftDelete(ctx, "b"))

	var store Store = NewRepositoryAdapter(repos)

	page, err := store.GetFeedPage(ctx, domain.FeedTop, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].ID)

	article, err := store.GetFeedArticle(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Go generics", article.Title)

	saved, err := store.GetSavedArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, int64(1), saved[0].ID)

	favs, err := store.GetFavoriteArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, int64(2), favs[0].ID)

	unread, err := store.GetUnreadArticles(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	found, err := store.SearchFeedArticles(ctx, "rust", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Saved)

	searchFavs, err := store.GetSearchFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, searchFavs, 1)
	assert.Equal(t, "a", searchFavs[0].ID)

	deleted, err := store.GetSearchDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "b", deleted[0].ID)

	require.NoError(t, store.Ping(ctx))
}
