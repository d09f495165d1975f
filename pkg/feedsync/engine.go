// Package feedsync reconciles remote ranked id lists with the local cache and serves feed pages from it.
package feedsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hnreader/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/search_store.go -pkg mocks -skip-ensure -fmt goimports . SearchStore
//go:generate moq -out mocks/story_client.go -pkg mocks -skip-ensure -fmt goimports . StoryClient
//go:generate moq -out mocks/search_client.go -pkg mocks -skip-ensure -fmt goimports . SearchClient

// FeedStore is the local cache of feed articles and memberships
type FeedStore interface {
	GetFeedArticlesByID(ctx context.Context, ids []int64) ([]domain.FeedArticle, error)
	ReplaceFeedSnapshot(ctx context.Context, category domain.FeedCategory, articles []domain.FeedArticle) error
	GetFeedPage(ctx context.Context, category domain.FeedCategory, limit, offset int) ([]domain.FeedArticle, error)
	CountFeedArticles(ctx context.Context, category domain.FeedCategory) (int, error)
	ClearFeedMembership(ctx context.Context, category domain.FeedCategory) error
	PurgeOldFeedArticles(ctx context.Context, age time.Duration) (int64, error)
}

// SearchStore is the local cache of search articles
type SearchStore interface {
	UpsertSearchArticles(ctx context.Context, articles []domain.SearchArticle) error
	GetNonDeleted(ctx context.Context, limit int) ([]domain.SearchArticle, error)
	PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error)
}

// StoryClient provides ranked id lists and items
type StoryClient interface {
	ListIDs(ctx context.Context, category domain.FeedCategory) ([]int64, error)
	FetchItemsBatched(ctx context.Context, ids []int64, batchSize, maxConcurrency int) ([]domain.FeedArticle, error)
}

// SearchClient provides pages of the search stream
type SearchClient interface {
	FetchSearchPage(ctx context.Context, page int) (*domain.SearchPage, error)
}

// defaults used for zero Params values
const (
	DefaultPageSize        = 30
	DefaultBatchSize       = 20
	DefaultMaxConcurrency  = 5
	DefaultCacheMultiplier = 10
	DefaultRetention       = 30 * 24 * time.Hour
)

// Params defines engine dependencies and sizes
type Params struct {
	Store           FeedStore
	Stories         StoryClient
	Search          SearchClient
	SearchStore     SearchStore
	PageSize        int
	BatchSize       int
	MaxConcurrency  int
	CacheMultiplier int // page-0 sync keeps at most PageSize*CacheMultiplier ids
}

// Engine syncs feeds into the cache and reads pages back
type Engine struct {
	Params
}

// CleanupParams defines retention of the cache sweep, zero values mean DefaultRetention
type CleanupParams struct {
	SearchRetention time.Duration // soft-deleted search articles older than this are purged
	FeedRetention   time.Duration // feed articles fetched before this and not saved or favorite are purged
}

// CleanupResult reports purged rows
type CleanupResult struct {
	SearchPurged int64
	FeedPurged   int64
}

// New makes an engine, zero sizes are replaced with defaults
func New(params Params) *Engine {
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.BatchSize <= 0 {
		params.BatchSize = DefaultBatchSize
	}
	if params.MaxConcurrency <= 0 {
		params.MaxConcurrency = DefaultMaxConcurrency
	}
	if params.CacheMultiplier <= 0 {
		params.CacheMultiplier = DefaultCacheMultiplier
	}
	return &Engine{Params: params}
}

// FetchFeedPage returns page of the category. Page 0 syncs the cache with the remote list first;
// if the sync fails the page is served from what is cached and marked stale. Other pages read the cache only.
// Cancellation is returned as an error wrapping context.Canceled.
func (e *Engine) FetchFeedPage(ctx context.Context, category domain.FeedCategory, page int) (domain.FeedPage, error) {
	if err := category.Validate(); err != nil {
		return domain.FeedPage{}, err
	}
	if page < 0 {
		page = 0
	}

	stale := false
	if page == 0 {
		if err := e.syncFeed(ctx, category); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return domain.FeedPage{}, fmt.Errorf("sync %s: %w", category, err)
			}
			lgr.Printf("[WARN] sync of %s failed, serving cached articles: %v", category, err)
			stale = true
		}
	}

	res, err := e.readPage(ctx, category, page)
	if err != nil {
		return domain.FeedPage{}, err
	}
	res.Stale = stale
	return res, nil
}

// RefreshFeed drops the membership of the category and syncs page 0 from scratch.
// Article rows stay, so re-fetched articles keep their interaction flags.
func (e *Engine) RefreshFeed(ctx context.Context, category domain.FeedCategory) (domain.FeedPage, error) {
	if err := category.Validate(); err != nil {
		return domain.FeedPage{}, err
	}
	if err := e.Store.ClearFeedMembership(ctx, category); err != nil {
		return domain.FeedPage{}, fmt.Errorf("refresh %s: %w", category, err)
	}
	lgr.Printf("[DEBUG] cleared %s membership for refresh", category)
	return e.FetchFeedPage(ctx, category, 0)
}

// syncFeed makes the cached membership of the category match the head of the remote list
func (e *Engine) syncFeed(ctx context.Context, category domain.FeedCategory) error {
	ids, err := e.Stories.ListIDs(ctx, category)
	if err != nil {
		return fmt.Errorf("list ids: %w", err)
	}
	if limit := e.PageSize * e.CacheMultiplier; len(ids) > limit {
		ids = ids[:limit]
	}

	cached, err := e.Store.GetFeedArticlesByID(ctx, ids)
	if err != nil {
		return fmt.Errorf("get cached articles: %w", err)
	}
	known := make(map[int64]domain.FeedArticle, len(ids))
	for _, a := range cached {
		known[a.ID] = a
	}

	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := e.Stories.FetchItemsBatched(ctx, missing, e.BatchSize, e.MaxConcurrency)
		if err != nil {
			return fmt.Errorf("fetch %d missing items: %w", len(missing), err)
		}
		for _, a := range fetched {
			known[a.ID] = a
		}
	}

	// snapshot follows remote order, ids which could not be fetched are skipped
	snapshot := make([]domain.FeedArticle, 0, len(ids))
	for _, id := range ids {
		if a, ok := known[id]; ok {
			snapshot = append(snapshot, a)
		}
	}
	if err := e.Store.ReplaceFeedSnapshot(ctx, category, snapshot); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	lgr.Printf("[DEBUG] synced %s: %d ids, %d cached, %d missing, %d stored",
		category, len(ids), len(cached), len(missing), len(snapshot))
	return nil
}

func (e *Engine) readPage(ctx context.Context, category domain.FeedCategory, page int) (domain.FeedPage, error) {
	offset := page * e.PageSize
	articles, err := e.Store.GetFeedPage(ctx, category, e.PageSize, offset)
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("read %s page %d: %w", category, page, err)
	}
	total, err := e.Store.CountFeedArticles(ctx, category)
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("count %s articles: %w", category, err)
	}

	if articles == nil {
		articles = []domain.FeedArticle{}
	}
	res := domain.FeedPage{Category: category, Page: page, Articles: articles, NextPage: page}
	if offset+len(articles) < total {
		res.HasMore = true
		res.NextPage = page + 1
	}
	return res, nil
}

// SyncSearchFeed refreshes the search stream from its first page and returns non-deleted articles.
// Remote or write failures fall back to the cached articles, cancellation is returned.
func (e *Engine) SyncSearchFeed(ctx context.Context, limit int) ([]domain.SearchArticle, error) {
	if err := e.syncSearch(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, fmt.Errorf("sync search feed: %w", err)
		}
		lgr.Printf("[WARN] search feed sync failed, serving cached articles: %v", err)
	}

	articles, err := e.SearchStore.GetNonDeleted(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read search articles: %w", err)
	}
	return articles, nil
}

func (e *Engine) syncSearch(ctx context.Context) error {
	page, err := e.Search.FetchSearchPage(ctx, 0)
	if err != nil {
		return fmt.Errorf("fetch search page: %w", err)
	}
	if err := e.SearchStore.UpsertSearchArticles(ctx, page.Hits); err != nil {
		return fmt.Errorf("store search hits: %w", err)
	}
	lgr.Printf("[DEBUG] synced search feed, %d hits of %d", len(page.Hits), page.TotalHits)
	return nil
}

// Cleanup purges soft-deleted search articles and stale feed articles past retention.
// Saved and favorite feed articles are never purged.
func (e *Engine) Cleanup(ctx context.Context, params CleanupParams) (CleanupResult, error) {
	if params.SearchRetention <= 0 {
		params.SearchRetention = DefaultRetention
	}
	if params.FeedRetention <= 0 {
		params.FeedRetention = DefaultRetention
	}

	var res CleanupResult
	var err error
	if res.SearchPurged, err = e.SearchStore.PurgeDeleted(ctx, params.SearchRetention); err != nil {
		return res, fmt.Errorf("cleanup search articles: %w", err)
	}
	if res.FeedPurged, err = e.Store.PurgeOldFeedArticles(ctx, params.FeedRetention); err != nil {
		return res, fmt.Errorf("cleanup feed articles: %w", err)
	}
	lgr.Printf("[INFO] cache cleanup removed %d search and %d feed articles", res.SearchPurged, res.FeedPurged)
	return res, nil
}
