package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/hnreader/pkg/domain"
)

// SearchArticleRepository handles search-sourced articles
type SearchArticleRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type searchArticleSQL struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	URL             string `db:"url"`
	Author          string `db:"author"`
	Points          int    `db:"points"`
	NumComments     int    `db:"num_comments"`
	CreatedAt       int64  `db:"created_at"`
	CreatedAtString string `db:"created_at_string"`
	FetchedAt       int64  `db:"fetched_at"`
	IsDeleted       bool   `db:"is_deleted"`
	DeletedAt       *int64 `db:"deleted_at"`
	IsFavorite      bool   `db:"is_favorite"`
	FavoritedAt     *int64 `db:"favorited_at"`
}

// deleted and favorite columns keep their stored values on conflict
const upsertSearchArticleSQL = `
	INSERT INTO search_articles (id, title, url, author, points, num_comments, created_at, created_at_string, fetched_at)
	VALUES (:id, :title, :url, :author, :points, :num_comments, :created_at, :created_at_string, :fetched_at)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		url = excluded.url,
		author = excluded.author,
		points = excluded.points,
		num_comments = excluded.num_comments,
		created_at = excluded.created_at,
		created_at_string = excluded.created_at_string,
		fetched_at = excluded.fetched_at
`

// NewSearchArticleRepository creates a new search article repository
func NewSearchArticleRepository(database *sqlx.DB) *SearchArticleRepository {
	return &SearchArticleRepository{db: database, now: time.Now}
}

// UpsertSearchArticles inserts or refreshes hits in one transaction, local flags of existing rows are kept
func (r *SearchArticleRepository) UpsertSearchArticles(ctx context.Context, articles []domain.SearchArticle) error {
	if len(articles) == 0 {
		return nil
	}
	now := r.now().UnixMilli()
	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, upsertSearchArticleSQL)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, a := range articles {
			row := searchArticleSQL{
				ID:              a.ID,
				Title:           a.Title,
				URL:             a.URL,
				Author:          a.Author,
				Points:          a.Points,
				NumComments:     a.NumComments,
				CreatedAt:       a.CreatedAt,
				CreatedAtString: a.CreatedAtString,
				FetchedAt:       now,
			}
			if _, err := stmt.ExecContext(ctx, row); err != nil {
				return fmt.Errorf("upsert %s: %w", a.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert %d search articles: %w", len(articles), err)
	}
	return nil
}

// GetNonDeleted returns articles not dismissed by the user, newest first. limit <= 0 means all.
func (r *SearchArticleRepository) GetNonDeleted(ctx context.Context, limit int) ([]domain.SearchArticle, error) {
	query := "SELECT * FROM search_articles WHERE is_deleted = 0 ORDER BY created_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var rows []searchArticleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get non-deleted search articles: %w", err)
	}
	return toDomainSearchArticles(rows), nil
}

// GetFavorites returns favorite articles, most recently favorited first
func (r *SearchArticleRepository) GetFavorites(ctx context.Context) ([]domain.SearchArticle, error) {
	var rows []searchArticleSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM search_articles WHERE is_favorite = 1 ORDER BY favorited_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("get favorite search articles: %w", err)
	}
	return toDomainSearchArticles(rows), nil
}

// GetDeleted returns soft-deleted articles, most recently deleted first
func (r *SearchArticleRepository) GetDeleted(ctx context.Context) ([]domain.SearchArticle, error) {
	var rows []searchArticleSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM search_articles WHERE is_deleted = 1 ORDER BY deleted_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("get deleted search articles: %w", err)
	}
	return toDomainSearchArticles(rows), nil
}

// GetSearchArticle returns one article, domain.ErrNotFound if missing
func (r *SearchArticleRepository) GetSearchArticle(ctx context.Context, id string) (*domain.SearchArticle, error) {
	var row searchArticleSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM search_articles WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get search article %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get search article %s: %w", id, err)
	}
	a := row.toDomain()
	return &a, nil
}

// SoftDelete marks the article as dismissed, the row is kept until purged
func (r *SearchArticleRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE search_articles SET is_deleted = 1, deleted_at = ? WHERE id = ?",
		r.now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", id, err)
	}
	return nil
}

// Restore clears the soft-delete flag
func (r *SearchArticleRepository) Restore(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE search_articles SET is_deleted = 0, deleted_at = NULL WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("restore %s: %w", id, err)
	}
	return nil
}

// ToggleFavorite inverts the favorite flag. It reads the current flag and then writes the
// inverted one in two statements, a missing id is a no-op.
func (r *SearchArticleRepository) ToggleFavorite(ctx context.Context, id string) error {
	var current bool
	err := r.db.GetContext(ctx, &current, "SELECT is_favorite FROM search_articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get favorite flag of %s: %w", id, err)
	}

	var favoritedAt *int64
	if !current {
		ms := r.now().UnixMilli()
		favoritedAt = &ms
	}
	_, err = r.db.ExecContext(ctx, "UPDATE search_articles SET is_favorite = ?, favorited_at = ? WHERE id = ?",
		!current, favoritedAt, id)
	if err != nil {
		return fmt.Errorf("toggle favorite of %s: %w", id, err)
	}
	return nil
}

// PurgeDeleted permanently removes articles soft-deleted longer than retention ago
func (r *SearchArticleRepository) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := r.now().Add(-retention).UnixMilli()
	res, err := r.db.ExecContext(ctx, "DELETE FROM search_articles WHERE is_deleted = 1 AND deleted_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge deleted search articles: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get purged count: %w", err)
	}
	return count, nil
}

// CountNonDeleted returns the number of articles not dismissed by the user
func (r *SearchArticleRepository) CountNonDeleted(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM search_articles WHERE is_deleted = 0"); err != nil {
		return 0, fmt.Errorf("count non-deleted search articles: %w", err)
	}
	return count, nil
}

func (s searchArticleSQL) toDomain() domain.SearchArticle {
	return domain.SearchArticle{
		ID:              s.ID,
		Title:           s.Title,
		URL:             s.URL,
		Author:          s.Author,
		Points:          s.Points,
		NumComments:     s.NumComments,
		CreatedAt:       s.CreatedAt,
		CreatedAtString: s.CreatedAtString,
		FetchedAt:       time.UnixMilli(s.FetchedAt).UTC(),
		IsDeleted:       s.IsDeleted,
		DeletedAt:       fromMillis(s.DeletedAt),
		IsFavorite:      s.IsFavorite,
		FavoritedAt:     fromMillis(s.FavoritedAt),
	}
}

func toDomainSearchArticles(rows []searchArticleSQL) []domain.SearchArticle {
	res := make([]domain.SearchArticle, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res
}
