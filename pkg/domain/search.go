package domain

import "time"

// SearchArticle is a hit of the search-sourced stream with its local state
type SearchArticle struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Author          string    `json:"author"`
	Points          int       `json:"points"`
	NumComments     int       `json:"num_comments"`
	CreatedAt       int64     `json:"created_at"`
	CreatedAtString string    `json:"created_at_string"`
	FetchedAt       time.Time `json:"fetched_at"`

	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	IsFavorite  bool       `json:"is_favorite"`
	FavoritedAt *time.Time `json:"favorited_at,omitempty"`
}

// SearchPage is one page of the search API response
type SearchPage struct {
	Hits       []SearchArticle
	Page       int
	TotalHits  int
	TotalPages int
}
