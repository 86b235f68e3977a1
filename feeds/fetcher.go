package feeds

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tunebot/types"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves candidate articles from RSS/Atom feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher creates a fetcher whose outbound requests use the given timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &Fetcher{parser: parser}
}

// Fetch retrieves and parses one feed, returning up to maxCount articles.
// Items without a parseable published timestamp are dropped, not defaulted to
// now: a fake "now" would mask staleness. Items older than the lookback
// window are dropped too (lookback <= 0 disables the window).
func (f *Fetcher) Fetch(feedURL string, maxCount int, lookback time.Duration) ([]*types.Article, error) {
	feed, err := f.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	cutoff := time.Time{}
	if lookback > 0 {
		cutoff = time.Now().Add(-lookback)
	}

	count := min(len(feed.Items), maxCount)
	articles := make([]*types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}
		if publishedAt.IsZero() {
			continue
		}
		if !cutoff.IsZero() && publishedAt.Before(cutoff) {
			continue
		}

		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		articles = append(articles, &types.Article{
			ID:          id,
			Title:       item.Title,
			URL:         item.Link,
			Source:      sourceName(item.Link, feed.Title),
			PublishedAt: publishedAt,
			FetchedAt:   time.Now(),
			Summary:     summary,
		})
	}

	return articles, nil
}

// sourceName derives a display name for the origin publication from the
// article link's host, falling back to the feed title.
func sourceName(link, feedTitle string) string {
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Host, "www.")
	}
	return feedTitle
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
