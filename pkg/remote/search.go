package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/hnreader/pkg/domain"
)

// SearchClient queries the date-sorted search API for a fixed query
type SearchClient struct {
	baseURL     string
	query       string
	hitsPerPage int
	client      *http.Client
	retryer     Retryer
	timeout     time.Duration
}

// SearchParams defines search client settings
type SearchParams struct {
	ClientParams
	Query       string
	HitsPerPage int
}

type searchResponse struct {
	Hits        []searchHit `json:"hits"`
	NbHits      int         `json:"nbHits"`
	Page        int         `json:"page"`
	NbPages     int         `json:"nbPages"`
	HitsPerPage int         `json:"hitsPerPage"`
}

type searchHit struct {
	ObjectID    string  `json:"objectID"`
	CreatedAt   string  `json:"created_at"`
	CreatedAtI  int64   `json:"created_at_i"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Author      string  `json:"author"`
	Points      *int    `json:"points"`
	NumComments *int    `json:"num_comments"`
	StoryTitle  *string `json:"story_title"`
	StoryURL    *string `json:"story_url"`
}

// NewSearchClient makes a search client
func NewSearchClient(params SearchParams) *SearchClient {
	if params.HitsPerPage <= 0 {
		params.HitsPerPage = 30
	}
	return &SearchClient{
		baseURL:     strings.TrimSuffix(params.BaseURL, "/"),
		query:       params.Query,
		hitsPerPage: params.HitsPerPage,
		client:      httpClient(params.ClientParams),
		retryer:     Retryer{MaxRetries: params.MaxRetries, Delay: params.RetryDelay},
		timeout:     params.Timeout,
	}
}

// FetchSearchPage returns one page of story hits, newest first. Hits without title or url are dropped.
func (c *SearchClient) FetchSearchPage(ctx context.Context, page int) (*domain.SearchPage, error) {
	var resp searchResponse
	u := c.pageURL(c.query, page, c.hitsPerPage)
	if err := c.retryer.Do(ctx, fmt.Sprintf("search page %d", page), func(ctx context.Context) error {
		resp = searchResponse{}
		return getJSON(ctx, c.client, c.timeout, u, &resp)
	}); err != nil {
		return nil, fmt.Errorf("fetch search page %d: %w", page, err)
	}

	res := &domain.SearchPage{
		Hits:       make([]domain.SearchArticle, 0, len(resp.Hits)),
		Page:       resp.Page,
		TotalHits:  resp.NbHits,
		TotalPages: resp.NbPages,
	}
	for _, h := range resp.Hits {
		if a, ok := h.toDomain(); ok {
			res.Hits = append(res.Hits, a)
		}
	}
	return res, nil
}

// Ping checks the search API is reachable with a single small query
func (c *SearchClient) Ping(ctx context.Context) bool {
	var resp searchResponse
	timeout := 5 * time.Second
	if c.timeout > 0 && c.timeout < timeout {
		timeout = c.timeout
	}
	return getJSON(ctx, c.client, timeout, c.pageURL("test", 0, 1), &resp) == nil
}

func (c *SearchClient) pageURL(query string, page, hitsPerPage int) string {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("hitsPerPage", strconv.Itoa(hitsPerPage))
	params.Set("tags", "story")
	return c.baseURL + "/search_by_date?" + params.Encode()
}

func (h searchHit) toDomain() (domain.SearchArticle, bool) {
	title := firstNonEmpty(h.Title, h.StoryTitle)
	link := firstNonEmpty(h.URL, h.StoryURL)
	if h.ObjectID == "" || title == "" || link == "" {
		return domain.SearchArticle{}, false
	}
	a := domain.SearchArticle{
		ID:              h.ObjectID,
		Title:           title,
		URL:             link,
		Author:          h.Author,
		CreatedAt:       h.CreatedAtI,
		CreatedAtString: h.CreatedAt,
	}
	if h.Points != nil {
		a.Points = *h.Points
	}
	if h.NumComments != nil {
		a.NumComments = *h.NumComments
	}
	return a, true
}

func firstNonEmpty(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
