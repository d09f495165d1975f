package domain

import (
	"errors"
	"fmt"
)

// FeedCategory names one of the upstream ranked story lists
type FeedCategory string

// supported feed categories
const (
	FeedTop  FeedCategory = "top"
	FeedNew  FeedCategory = "new"
	FeedBest FeedCategory = "best"
	FeedAsk  FeedCategory = "ask"
)

// ErrUnknownCategory is returned for a feed category outside of the supported set
var ErrUnknownCategory = errors.New("unknown feed category")

// ErrNotFound is returned when a requested record is not in the local cache
var ErrNotFound = errors.New("not found")

// Categories returns all supported feed categories in display order
func Categories() []FeedCategory {
	return []FeedCategory{FeedTop, FeedNew, FeedBest, FeedAsk}
}

// ParseCategory converts a string to a FeedCategory, rejecting unknown names
func ParseCategory(s string) (FeedCategory, error) {
	c := FeedCategory(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the category is one of the supported ones
func (c FeedCategory) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
}

// Title returns a human-readable name of the category
func (c FeedCategory) Title() string {
	switch c {
	case FeedTop:
		return "Top Stories"
	case FeedNew:
		return "New"
	case FeedBest:
		return "Best"
	case FeedAsk:
		return "Ask HN"
	default:
		return string(c)
	}
}

// FeedPage is one page of a feed served from the local cache
type FeedPage struct {
	Category FeedCategory  `json:"category"`
	Page     int           `json:"page"`
	Articles []FeedArticle `json:"articles"`
	HasMore  bool          `json:"has_more"`
	NextPage int           `json:"next_page"`
	Stale    bool          `json:"stale"` // served from cache after a failed sync
}

// Stats holds article counters of the feed cache
type Stats struct {
	Total    int `json:"total" db:"total"`
	Saved    int `json:"saved" db:"saved"`
	Favorite int `json:"favorite" db:"favorite"`
	Unread   int `json:"unread" db:"unread"`
	Read     int `json:"read" db:"read"`
}
