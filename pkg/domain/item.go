package domain

import "time"

// ItemType is the upstream kind of a story item
type ItemType string

// item types served by the story lists
const (
	ItemStory ItemType = "story"
	ItemAsk   ItemType = "ask"
	ItemJob   ItemType = "job"
	ItemPoll  ItemType = "poll"
)

// FeedArticle represents a story from the ranked story lists along with
// the locally owned interaction state
type FeedArticle struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	Text        string   `json:"text,omitempty"`
	By          string   `json:"by"`
	Time        int64    `json:"time"`
	Score       int      `json:"score"`
	Descendants *int     `json:"descendants,omitempty"`
	Type        ItemType `json:"type"`
	Kids        []int64  `json:"kids,omitempty"`

	// local state, never supplied by the remote source
	IsRead      bool       `json:"is_read"`
	IsSaved     bool       `json:"is_saved"`
	IsFavorite  bool       `json:"is_favorite"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	SavedAt     *time.Time `json:"saved_at,omitempty"`
	FavoritedAt *time.Time `json:"favorited_at,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
}

// Published returns the upstream submission time
func (a FeedArticle) Published() time.Time {
	return time.Unix(a.Time, 0).UTC()
}

// InteractionFlag names one of the boolean interaction attributes of a FeedArticle
type InteractionFlag string

// interaction flags of feed articles
const (
	FlagRead     InteractionFlag = "read"
	FlagSaved    InteractionFlag = "saved"
	FlagFavorite InteractionFlag = "favorite"
)
