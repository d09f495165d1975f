package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/hnreader/pkg/domain"
)

// StoryClient reads ranked story lists and items from the HN API
type StoryClient struct {
	baseURL string
	client  *http.Client
	retryer Retryer
	timeout time.Duration
}

// ClientParams defines settings shared by remote clients
type ClientParams struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client // optional, created with Timeout if nil
}

// hnItem is the upstream item payload
type hnItem struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	By          string  `json:"by"`
	Time        int64   `json:"time"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Text        string  `json:"text"`
	Score       int     `json:"score"`
	Descendants *int    `json:"descendants"`
	Kids        []int64 `json:"kids"`
	Deleted     bool    `json:"deleted"`
	Dead        bool    `json:"dead"`
}

// NewStoryClient makes a story list client
func NewStoryClient(params ClientParams) *StoryClient {
	return &StoryClient{
		baseURL: strings.TrimSuffix(params.BaseURL, "/"),
		client:  httpClient(params),
		retryer: Retryer{MaxRetries: params.MaxRetries, Delay: params.RetryDelay},
		timeout: params.Timeout,
	}
}

// ListIDs returns ranked ids of the category in upstream order
func (c *StoryClient) ListIDs(ctx context.Context, category domain.FeedCategory) ([]int64, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	var ids []int64
	u := fmt.Sprintf("%s/%sstories.json", c.baseURL, category)
	if err := c.retryer.Do(ctx, "list "+string(category), func(ctx context.Context) error {
		return getJSON(ctx, c.client, c.timeout, u, &ids)
	}); err != nil {
		return nil, fmt.Errorf("list %s ids: %w", category, err)
	}
	return ids, nil
}

// FetchItem returns a single item, nil when the upstream item is missing, deleted or dead
func (c *StoryClient) FetchItem(ctx context.Context, id int64) (*domain.FeedArticle, error) {
	var item *hnItem
	u := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	if err := c.retryer.Do(ctx, fmt.Sprintf("item %d", id), func(ctx context.Context) error {
		item = nil
		return getJSON(ctx, c.client, c.timeout, u, &item)
	}); err != nil {
		return nil, fmt.Errorf("fetch item %d: %w", id, err)
	}
	if item == nil || item.Deleted || item.Dead {
		return nil, nil //nolint:nilnil // unavailable item is not an error
	}
	return item.toDomain(), nil
}

// FetchItems fetches all ids concurrently, failed and unavailable items are dropped.
// Result follows the order of ids.
func (c *StoryClient) FetchItems(ctx context.Context, ids []int64) []domain.FeedArticle {
	results := make([]*domain.FeedArticle, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			item, err := c.FetchItem(ctx, id)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					lgr.Printf("[DEBUG] skip item %d: %v", id, err)
				}
				return nil
			}
			results[i] = item
			return nil
		})
	}
	_ = g.Wait()

	res := make([]domain.FeedArticle, 0, len(ids))
	for _, item := range results {
		if item != nil {
			res = append(res, *item)
		}
	}
	return res
}

// FetchItemsBatched fetches ids in sequential batches of batchSize. Each batch is split into chunks of
// maxConcurrency fetched in parallel, so no more than maxConcurrency requests are in flight.
// Context is checked before every chunk and a cancelled fetch returns what it has with the context error.
func (c *StoryClient) FetchItemsBatched(ctx context.Context, ids []int64, batchSize, maxConcurrency int) ([]domain.FeedArticle, error) {
	if batchSize <= 0 {
		batchSize = len(ids)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	res := make([]domain.FeedArticle, 0, len(ids))
	for start := 0; start < len(ids); start += batchSize {
		batch := ids[start:min(start+batchSize, len(ids))]
		for j := 0; j < len(batch); j += maxConcurrency {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("batched fetch stopped after %d items: %w", len(res), err)
			}
			chunk := batch[j:min(j+maxConcurrency, len(batch))]
			res = append(res, c.FetchItems(ctx, chunk)...)
		}
	}
	return res, nil
}

// FetchUser returns the profile of an upstream account
func (c *StoryClient) FetchUser(ctx context.Context, name string) (*domain.User, error) {
	var user *domain.User
	u := fmt.Sprintf("%s/user/%s.json", c.baseURL, url.PathEscape(name))
	if err := c.retryer.Do(ctx, "user "+name, func(ctx context.Context) error {
		user = nil
		return getJSON(ctx, c.client, c.timeout, u, &user)
	}); err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", name, err)
	}
	if user == nil {
		return nil, fmt.Errorf("fetch user %s: %w", name, domain.ErrNotFound)
	}
	return user, nil
}

// Ping checks the API is reachable with a single attempt
func (c *StoryClient) Ping(ctx context.Context) bool {
	timeout := 5 * time.Second
	if c.timeout > 0 && c.timeout < timeout {
		timeout = c.timeout
	}
	var id int64
	return getJSON(ctx, c.client, timeout, c.baseURL+"/maxitem.json", &id) == nil
}

func (i *hnItem) toDomain() *domain.FeedArticle {
	itemType := domain.ItemType(i.Type)
	if itemType == "" {
		itemType = domain.ItemStory
	}
	return &domain.FeedArticle{
		ID:          i.ID,
		Title:       i.Title,
		URL:         i.URL,
		Text:        i.Text,
		By:          i.By,
		Time:        i.Time,
		Score:       i.Score,
		Descendants: i.Descendants,
		Type:        itemType,
		Kids:        i.Kids,
	}
}

func httpClient(params ClientParams) *http.Client {
	if params.HTTPClient != nil {
		return params.HTTPClient
	}
	return &http.Client{Timeout: params.Timeout}
}

// getJSON makes a GET request bounded by timeout and decodes a 2xx response into dest
func getJSON(ctx context.Context, client *http.Client, timeout time.Duration, u string, dest any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", errPermanent, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, URL: u}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
