package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnreader/pkg/domain"
)

func testArticles() []domain.FeedArticle {
	comments := 71
	return []domain.FeedArticle{
		{ID: 8863, Title: "My YC app: Dropbox", URL: "http://www.getdropbox.com/u/2/screencast.html", By: "dhouston",
			Time: 1175714200, Score: 111, Descendants: &comments, Type: domain.ItemStory},
		{ID: 121003, Title: "Ask HN: The Arc Effect", By: "tel", Time: 1203647620, Score: 25, Type: domain.ItemAsk,
			Text: `<p>body text</p><script>alert(1)</script><a href="javascript:alert(2)">link</a>`},
	}
}

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com")
	generator.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	t.Run("top stories", func(t *testing.T) {
		rss, err := generator.GenerateRSS(domain.FeedTop, testArticles())
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Hacker News - Top Stories</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<description>Cached top stories from Hacker News</description>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/rss/top" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<lastBuildDate>Mon, 01 Jan 2024 12:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<guid isPermaLink="true">https://news.ycombinator.com/item?id=8863</guid>`)
		assert.Contains(t, rss, `<author>dhouston</author>`)
		assert.Contains(t, rss, `<comments>https://news.ycombinator.com/item?id=8863</comments>`)
		assert.Contains(t, rss, `<category>story</category>`)
		assert.Contains(t, rss, `Score: 111 | Comments: 71`)
	})

	t.Run("ask category", func(t *testing.T) {
		rss, err := generator.GenerateRSS(domain.FeedAsk, nil)
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>Hacker News - Ask HN</title>`)
		assert.Contains(t, rss, `href="https://example.com/rss/ask"`)
		assert.Contains(t, rss, `<channel>`)
		assert.NotContains(t, rss, `<item>`)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := generator.GenerateRSS(domain.FeedCategory("jobs"), testArticles())
		require.ErrorIs(t, err, domain.ErrUnknownCategory)
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		gen := NewGenerator("https://example.com/")
		rss, err := gen.GenerateRSS(domain.FeedNew, testArticles()[:1])
		require.NoError(t, err)
		assert.Contains(t, rss, `href="https://example.com/rss/new"`)
		assert.NotContains(t, rss, `https://example.com//`)
	})
}

func TestGenerator_ParsedByFeedReader(t *testing.T) {
	rss, err := NewGenerator("https://example.com").GenerateRSS(domain.FeedBest, testArticles())
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "2.0", parsed.FeedVersion)
	assert.Equal(t, "Hacker News - Best", parsed.Title)
	require.Len(t, parsed.Items, 2)

	story := parsed.Items[0]
	assert.Equal(t, "My YC app: Dropbox", story.Title)
	assert.Equal(t, "http://www.getdropbox.com/u/2/screencast.html", story.Link)
	assert.Equal(t, "https://news.ycombinator.com/item?id=8863", story.GUID)
	require.NotNil(t, story.PublishedParsed)
	assert.Equal(t, int64(1175714200), story.PublishedParsed.Unix())
	assert.Equal(t, []string{"story"}, story.Categories)

	ask := parsed.Items[1]
	assert.Equal(t, "https://news.ycombinator.com/item?id=121003", ask.Link, "text story links to discussion")
	assert.Contains(t, ask.Description, "body text")
	assert.NotContains(t, ask.Description, "script")
	assert.NotContains(t, ask.Description, "javascript:")
	assert.True(t, strings.HasSuffix(ask.Description, "Score: 25 | Comments: 0"))
}

func TestGenerator_convertToRSSItem(t *testing.T) {
	generator := NewGenerator("https://example.com")

	item := generator.convertToRSSItem(domain.FeedArticle{ID: 5, Title: "Tom & Jerry <3", By: "a&b", Time: 0})
	assert.Equal(t, "Tom & Jerry <3", item.Title)
	assert.Equal(t, "https://news.ycombinator.com/item?id=5", item.Link)
	assert.Equal(t, "Score: 0 | Comments: 0", item.Description)
	assert.Nil(t, item.Categories)

	rss, err := generator.GenerateRSS(domain.FeedTop, []domain.FeedArticle{{ID: 5, Title: "Tom & Jerry <3", By: "a&b"}})
	require.NoError(t, err)
	assert.Contains(t, rss, "Tom &amp; Jerry &lt;3")
	assert.Contains(t, rss, "<author>a&amp;b</author>")
	assert.Regexp(t, `(?s)<rss[^>]*>.*<channel>.*</channel>.*</rss>`, rss)
}
