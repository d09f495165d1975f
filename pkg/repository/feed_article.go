package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/hnreader/pkg/domain"
)

// FeedArticleRepository handles feed article and feed membership operations
type FeedArticleRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// feedArticleSQL represents a feed article row
type feedArticleSQL struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	URL         string `db:"url"`
	Text        string `db:"text"`
	Author      string `db:"author"`
	PublishedAt int64  `db:"published_at"`
	Score       int    `db:"score"`
	Descendants *int64 `db:"descendants"`
	Type        string `db:"type"`
	Kids        string `db:"kids"`
	IsRead      bool   `db:"is_read"`
	IsSaved     bool   `db:"is_saved"`
	IsFavorite  bool   `db:"is_favorite"`
	ReadAt      *int64 `db:"read_at"`
	SavedAt     *int64 `db:"saved_at"`
	FavoritedAt *int64 `db:"favorited_at"`
	FetchedAt   int64  `db:"fetched_at"`
}

// content columns only, local state columns are never listed in the update set
const upsertFeedArticleSQL = `
	INSERT INTO feed_articles (id, title, url, text, author, published_at, score, descendants, type, kids, fetched_at)
	VALUES (:id, :title, :url, :text, :author, :published_at, :score, :descendants, :type, :kids, :fetched_at)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		url = excluded.url,
		text = excluded.text,
		author = excluded.author,
		published_at = excluded.published_at,
		score = excluded.score,
		descendants = excluded.descendants,
		type = excluded.type,
		kids = excluded.kids,
		fetched_at = excluded.fetched_at
`

const upsertMembershipSQL = `
	INSERT INTO feed_memberships (article_id, feed_category, position, fetched_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(article_id, feed_category) DO UPDATE SET
		position = excluded.position,
		fetched_at = excluded.fetched_at
`

// NewFeedArticleRepository creates a new feed article repository
func NewFeedArticleRepository(database *sqlx.DB) *FeedArticleRepository {
	return &FeedArticleRepository{db: database, now: time.Now}
}

// UpsertFeedArticle writes content fields of the article and its membership in the category atomically.
// Interaction fields of an existing row are kept.
func (r *FeedArticleRepository) UpsertFeedArticle(ctx context.Context, article domain.FeedArticle,
	category domain.FeedCategory, position int) error {
	if err := category.Validate(); err != nil {
		return err
	}
	now := r.now().UnixMilli()
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.upsertInTx(ctx, tx, article, category, position, now)
	})
	if err != nil {
		return fmt.Errorf("upsert feed article %d: %w", article.ID, err)
	}
	return nil
}

// BulkUpsertFeedArticles writes all articles into the category in one transaction, position is the slice index
func (r *FeedArticleRepository) BulkUpsertFeedArticles(ctx context.Context, category domain.FeedCategory,
	articles []domain.FeedArticle) error {
	if err := category.Validate(); err != nil {
		return err
	}
	now := r.now().UnixMilli()
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, a := range articles {
			if err := r.upsertInTx(ctx, tx, a, category, i, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bulk upsert %d feed articles: %w", len(articles), err)
	}
	return nil
}

// ReplaceFeedSnapshot overwrites the whole membership of the category with the given articles.
// Memberships are cleared and articles upserted in one transaction, position is the slice index.
func (r *FeedArticleRepository) ReplaceFeedSnapshot(ctx context.Context, category domain.FeedCategory,
	articles []domain.FeedArticle) error {
	if err := category.Validate(); err != nil {
		return err
	}
	now := r.now().UnixMilli()
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM feed_memberships WHERE feed_category = ?", string(category)); err != nil {
			return fmt.Errorf("clear membership: %w", err)
		}
		for i, a := range articles {
			if err := r.upsertInTx(ctx, tx, a, category, i, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s snapshot: %w", category, err)
	}
	return nil
}

func (r *FeedArticleRepository) upsertInTx(ctx context.Context, tx *sqlx.Tx, a domain.FeedArticle,
	category domain.FeedCategory, position int, now int64) error {
	row, err := fromDomainFeedArticle(a)
	if err != nil {
		return err
	}
	row.FetchedAt = now
	if _, err := tx.NamedExecContext(ctx, upsertFeedArticleSQL, row); err != nil {
		return fmt.Errorf("upsert article %d: %w", a.ID, err)
	}
	if _, err := tx.ExecContext(ctx, upsertMembershipSQL, a.ID, string(category), position, now); err != nil {
		return fmt.Errorf("upsert membership of %d: %w", a.ID, err)
	}
	return nil
}

// GetFeedArticlesByID returns cached articles for the given ids, order is not defined
func (r *FeedArticleRepository) GetFeedArticlesByID(ctx context.Context, ids []int64) ([]domain.FeedArticle, error) {
	if len(ids) == 0 {
		return []domain.FeedArticle{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM feed_articles WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build ids query: %w", err)
	}
	var rows []feedArticleSQL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get feed articles by id: %w", err)
	}
	return toDomainFeedArticles(rows)
}

// GetFeedArticle returns a single cached article, domain.ErrNotFound if missing
func (r *FeedArticleRepository) GetFeedArticle(ctx context.Context, id int64) (*domain.FeedArticle, error) {
	var row feedArticleSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM feed_articles WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get feed article %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get feed article %d: %w", id, err)
	}
	a, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetFeedPage returns a slice of the category ordered by position
func (r *FeedArticleRepository) GetFeedPage(ctx context.Context, category domain.FeedCategory,
	limit, offset int) ([]domain.FeedArticle, error) {
	query := `
		SELECT a.* FROM feed_articles a
		JOIN feed_memberships m ON m.article_id = a.id
		WHERE m.feed_category = ?
		ORDER BY m.position ASC
		LIMIT ? OFFSET ?
	`
	var rows []feedArticleSQL
	if err := r.db.SelectContext(ctx, &rows, query, string(category), limit, offset); err != nil {
		return nil, fmt.Errorf("get %s page: %w", category, err)
	}
	return toDomainFeedArticles(rows)
}

// CountFeedArticles returns the number of articles joined to the category
func (r *FeedArticleRepository) CountFeedArticles(ctx context.Context, category domain.FeedCategory) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feed_memberships WHERE feed_category = ?", string(category))
	if err != nil {
		return 0, fmt.Errorf("count %s articles: %w", category, err)
	}
	return count, nil
}

// ClearFeedMembership removes all membership rows of the category, article rows are untouched
func (r *FeedArticleRepository) ClearFeedMembership(ctx context.Context, category domain.FeedCategory) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM feed_memberships WHERE feed_category = ?", string(category)); err != nil {
		return fmt.Errorf("clear %s membership: %w", category, err)
	}
	return nil
}

// SetInteractionFlag sets one interaction flag with its timestamp. Missing articles are ignored.
func (r *FeedArticleRepository) SetInteractionFlag(ctx context.Context, id int64, flag domain.InteractionFlag,
	value bool, at *time.Time) error {
	var query string
	switch flag {
	case domain.FlagRead:
		query = "UPDATE feed_articles SET is_read = ?, read_at = ? WHERE id = ?"
	case domain.FlagSaved:
		query = "UPDATE feed_articles SET is_saved = ?, saved_at = ? WHERE id = ?"
	case domain.FlagFavorite:
		query = "UPDATE feed_articles SET is_favorite = ?, favorited_at = ? WHERE id = ?"
	default:
		return fmt.Errorf("unknown interaction flag %q", flag)
	}
	if _, err := r.db.ExecContext(ctx, query, value, toMillis(at), id); err != nil {
		return fmt.Errorf("set %s on %d: %w", flag, id, err)
	}
	return nil
}

// DeleteFeedArticle removes the article and all of its memberships
func (r *FeedArticleRepository) DeleteFeedArticle(ctx context.Context, id int64) error {
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM feed_memberships WHERE article_id = ?", id); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM feed_articles WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete feed article %d: %w", id, err)
	}
	return nil
}

// GetSavedArticles returns saved articles, most recently saved first. limit <= 0 means all.
func (r *FeedArticleRepository) GetSavedArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.selectWhere(ctx, "is_saved = 1", "saved_at DESC", limit)
}

// GetFavoriteArticles returns favorite articles, most recently favorited first. limit <= 0 means all.
func (r *FeedArticleRepository) GetFavoriteArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.selectWhere(ctx, "is_favorite = 1", "favorited_at DESC", limit)
}

// GetUnreadArticles returns unread articles, most recently fetched first. limit <= 0 means all.
func (r *FeedArticleRepository) GetUnreadArticles(ctx context.Context, limit int) ([]domain.FeedArticle, error) {
	return r.selectWhere(ctx, "is_read = 0", "fetched_at DESC", limit)
}

func (r *FeedArticleRepository) selectWhere(ctx context.Context, where, order string, limit int) ([]domain.FeedArticle, error) {
	query := "SELECT * FROM feed_articles WHERE " + where + " ORDER BY " + order + ", id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var rows []feedArticleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select articles where %s: %w", where, err)
	}
	return toDomainFeedArticles(rows)
}

// SearchFeedArticles finds cached articles with the query in title or text, newest first
func (r *FeedArticleRepository) SearchFeedArticles(ctx context.Context, query string, limit int) ([]domain.FeedArticle, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + query + "%"
	var rows []feedArticleSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM feed_articles
		WHERE title LIKE ? OR text LIKE ?
		ORDER BY published_at DESC
		LIMIT ?`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search feed articles: %w", err)
	}
	return toDomainFeedArticles(rows)
}

// Stats returns counters over all cached feed articles
func (r *FeedArticleRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(is_saved), 0) AS saved,
			COALESCE(SUM(is_favorite), 0) AS favorite,
			COALESCE(SUM(CASE WHEN is_read = 0 THEN 1 ELSE 0 END), 0) AS unread,
			COALESCE(SUM(is_read), 0) AS read
		FROM feed_articles`)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// PurgeOldFeedArticles deletes articles fetched longer than age ago which are neither saved nor favorite
func (r *FeedArticleRepository) PurgeOldFeedArticles(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := r.now().Add(-age).UnixMilli()
	const cond = "fetched_at < ? AND is_saved = 0 AND is_favorite = 0"
	var purged int64
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM feed_memberships WHERE article_id IN (SELECT id FROM feed_articles WHERE "+cond+")", cutoff); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM feed_articles WHERE "+cond, cutoff)
		if err != nil {
			return fmt.Errorf("delete articles: %w", err)
		}
		purged, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("purge old feed articles: %w", err)
	}
	return purged, nil
}

func fromDomainFeedArticle(a domain.FeedArticle) (feedArticleSQL, error) {
	kids := a.Kids
	if kids == nil {
		kids = []int64{}
	}
	kidsJSON, err := json.Marshal(kids)
	if err != nil {
		return feedArticleSQL{}, fmt.Errorf("marshal kids of %d: %w", a.ID, err)
	}
	itemType := a.Type
	if itemType == "" {
		itemType = domain.ItemStory
	}
	row := feedArticleSQL{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		Text:        a.Text,
		Author:      a.By,
		PublishedAt: a.Time,
		Score:       a.Score,
		Type:        string(itemType),
		Kids:        string(kidsJSON),
	}
	if a.Descendants != nil {
		d := int64(*a.Descendants)
		row.Descendants = &d
	}
	return row, nil
}

func (s feedArticleSQL) toDomain() (domain.FeedArticle, error) {
	a := domain.FeedArticle{
		ID:          s.ID,
		Title:       s.Title,
		URL:         s.URL,
		Text:        s.Text,
		By:          s.Author,
		Time:        s.PublishedAt,
		Score:       s.Score,
		Type:        domain.ItemType(s.Type),
		IsRead:      s.IsRead,
		IsSaved:     s.IsSaved,
		IsFavorite:  s.IsFavorite,
		ReadAt:      fromMillis(s.ReadAt),
		SavedAt:     fromMillis(s.SavedAt),
		FavoritedAt: fromMillis(s.FavoritedAt),
		FetchedAt:   time.UnixMilli(s.FetchedAt).UTC(),
	}
	if s.Descendants != nil {
		d := int(*s.Descendants)
		a.Descendants = &d
	}
	if s.Kids != "" && s.Kids != "[]" {
		if err := json.Unmarshal([]byte(s.Kids), &a.Kids); err != nil {
			return domain.FeedArticle{}, fmt.Errorf("unmarshal kids of %d: %w", s.ID, err)
		}
	}
	return a, nil
}

func toDomainFeedArticles(rows []feedArticleSQL) ([]domain.FeedArticle, error) {
	res := make([]domain.FeedArticle, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}
