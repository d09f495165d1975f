// Package interaction applies user actions (read, save, favorite, delete) to cached articles.
package interaction

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hnreader/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/search_store.go -pkg mocks -skip-ensure -fmt goimports . SearchStore

// FeedStore changes local state of feed articles
type FeedStore interface {
	SetInteractionFlag(ctx context.Context, id int64, flag domain.InteractionFlag, value bool, at *time.Time) error
	DeleteFeedArticle(ctx context.Context, id int64) error
}

// SearchStore changes local state of search articles
type SearchStore interface {
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
}

// Manager applies interactions to the stores
type Manager struct {
	feeds  FeedStore
	search SearchStore
	now    func() time.Time
}

// NewManager makes a manager with the wall clock
func NewManager(feeds FeedStore, search SearchStore) *Manager {
	return &Manager{feeds: feeds, search: search, now: time.Now}
}

// MarkRead sets the read flag and its timestamp
func (m *Manager) MarkRead(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagRead, true)
}

// MarkUnread clears the read flag
func (m *Manager) MarkUnread(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagRead, false)
}

// Save marks article as saved for later
func (m *Manager) Save(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagSaved, true)
}

// Unsave clears the saved flag
func (m *Manager) Unsave(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagSaved, false)
}

// Favorite marks article as favorite
func (m *Manager) Favorite(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagFavorite, true)
}

// Unfavorite clears the favorite flag
func (m *Manager) Unfavorite(ctx context.Context, id int64) error {
	return m.setFlag(ctx, id, domain.FlagFavorite, false)
}

// Delete removes a feed article with its memberships.
// The article comes back if it is still listed upstream on the next sync.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	if err := m.feeds.DeleteFeedArticle(ctx, id); err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	lgr.Printf("[DEBUG] deleted article %d", id)
	return nil
}

// DeleteSearch hides a search article, it stays hidden across syncs until restored
func (m *Manager) DeleteSearch(ctx context.Context, id string) error {
	if err := m.search.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete search article %s: %w", id, err)
	}
	lgr.Printf("[DEBUG] soft-deleted search article %s", id)
	return nil
}

// RestoreSearch brings back a soft-deleted search article
func (m *Manager) RestoreSearch(ctx context.Context, id string) error {
	if err := m.search.Restore(ctx, id); err != nil {
		return fmt.Errorf("restore search article %s: %w", id, err)
	}
	lgr.Printf("[DEBUG] restored search article %s", id)
	return nil
}

// ToggleSearchFavorite flips the favorite flag of a search article
func (m *Manager) ToggleSearchFavorite(ctx context.Context, id string) error {
	if err := m.search.ToggleFavorite(ctx, id); err != nil {
		return fmt.Errorf("toggle favorite of search article %s: %w", id, err)
	}
	lgr.Printf("[DEBUG] toggled favorite of search article %s", id)
	return nil
}

func (m *Manager) setFlag(ctx context.Context, id int64, flag domain.InteractionFlag, value bool) error {
	var at *time.Time
	if value {
		ts := m.now()
		at = &ts
	}
	if err := m.feeds.SetInteractionFlag(ctx, id, flag, value, at); err != nil {
		return fmt.Errorf("set %s=%v on article %d: %w", flag, value, id, err)
	}
	lgr.Printf("[DEBUG] set %s=%v on article %d", flag, value, id)
	return nil
}
