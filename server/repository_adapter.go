package server

import (
	"context"

	"github.com/umputun/hnreader/pkg/domain"
	"github.com/umputun/hnreader/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Store interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetFeedPage returns cached articles of the category in feed order
func (r *RepositoryAdapter) GetFeedPage(ctx context.Context, category domain.FeedCategory, limit, offset int) ([]domain.FeedArticle, error) {
	return r.repos.Feed.GetFeedPage(ctx, category, limit, offset)
}

// GetFeedArticle returns one cached feed article
func (r *RepositoryAdapter) GetFeedArticle(ctx context.Context, id int64) (*domain.FeedArticle, error) {
	return r.repos.Feed.GetFeedArticle(ctx, id)
}

// GetSavedArticles returns saved feed articles
func (r *RepositoryAdapter) GetSavedArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.repos.Feed.GetSavedArticles(ctx, limit)
}

// GetFavoriteArticles returns favorite feed articles
func (r *RepositoryAdapter) GetFavoriteArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.repos.Feed.GetFavoriteArticles(ctx, limit)
}

// GetUnreadArticles returns unread feed articles
func (r *RepositoryAdapter) GetUnreadArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.repos.Feed.GetUnreadArticles(ctx, limit)
}

// SearchFeedArticles searches cached feed articles
func (r *RepositoryAdapter) SearchFeedArticles(ctx context.Context, query string, limit int) ([]domain.FeedArticle, error) {
	return r.repos.Feed.SearchFeedArticles(ctx, query, limit)
}

// Stats returns feed cache counters
func (r *RepositoryAdapter) Stats(ctx context.Context) (domain.Stats, error) {
	return r.repos.Feed.Stats(ctx)
}

// GetSearchFavorites returns favorite search articles
func (r *RepositoryAdapter) GetSearchFavorites(ctx context.Context) ([]domain.SearchArticle, error) {
	return r.repos.Search.GetFavorites(ctx)
}

// GetSearchDeleted returns soft-deleted search articles
func (r *RepositoryAdapter) GetSearchDeleted(ctx context.Context) ([]domain.SearchArticle, error) {
	return r.repos.Search.GetDeleted(ctx)
}

// Ping checks the database connection
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}
