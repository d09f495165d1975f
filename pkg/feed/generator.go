// Package feed renders cached feed pages as RSS 2.0
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/hnreader/pkg/domain"
)

// DefaultItemBaseURL is the discussion page base of story items
const DefaultItemBaseURL = "https://news.ycombinator.com"

// Generator creates RSS feeds from cached articles
type Generator struct {
	baseURL     string
	itemBaseURL string
	policy      *bluemonday.Policy
	now         func() time.Time
}

// NewGenerator creates a new feed generator, baseURL is the public address of the server
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		itemBaseURL: DefaultItemBaseURL,
		policy:      bluemonday.UGCPolicy(),
		now:         time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed of the category from articles in the given order
func (g *Generator) GenerateRSS(category domain.FeedCategory, articles []domain.FeedArticle) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Hacker News - " + category.Title(),
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Cached %s from Hacker News", strings.ToLower(category.Title())),
			AtomLink:      &AtomLink{Href: fmt.Sprintf("%s/rss/%s", g.baseURL, category), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			TTL:           15,
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an article to an RSS item, text-only stories link to their discussion page
func (g *Generator) convertToRSSItem(a domain.FeedArticle) *RSSItem {
	discussion := g.ItemURL(a.ID)
	link := a.URL
	if link == "" {
		link = discussion
	}

	comments := 0
	if a.Descendants != nil {
		comments = *a.Descendants
	}
	desc := fmt.Sprintf("Score: %d | Comments: %d", a.Score, comments)
	if text := strings.TrimSpace(g.policy.Sanitize(a.Text)); text != "" {
		desc = text + "\n\n" + desc
	}

	item := &RSSItem{
		Title:       a.Title,
		Link:        link,
		GUID:        RSSGUID{Value: discussion, IsPermaLink: true},
		Description: desc,
		Author:      a.By,
		Comments:    discussion,
		PubDate:     a.Published().Format(time.RFC1123Z),
	}
	if a.Type != "" {
		item.Categories = []string{string(a.Type)}
	}
	return item
}

// ItemURL returns the discussion page of the item
func (g *Generator) ItemURL(id int64) string {
	return fmt.Sprintf("%s/item?id=%d", g.itemBaseURL, id)
}
