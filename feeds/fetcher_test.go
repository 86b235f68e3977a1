package feeds

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func rssDoc(items string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title>%s</channel></rss>`, items)
}

func rssItem(title, link, pubDate string) string {
	item := fmt.Sprintf(`<item><title>%s</title><link>%s</link><description>preview</description>`, title, link)
	if pubDate != "" {
		item += fmt.Sprintf(`<pubDate>%s</pubDate>`, pubDate)
	}
	return item + `</item>`
}

func TestFetchDropsInvalidAndStaleItems(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC1123Z)
	stale := time.Now().Add(-90 * 24 * time.Hour).Format(time.RFC1123Z)

	doc := rssDoc(
		rssItem("AI music startup raises", "https://www.example.com/one", recent) +
			rssItem("No date at all", "https://www.example.com/two", "") +
			rssItem("Ancient AI music story", "https://www.example.com/three", stale),
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, doc)
	}))
	defer srv.Close()

	fetcher := NewFetcher(5 * time.Second)
	articles, err := fetcher.Fetch(srv.URL, 10, 48*time.Hour)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("expected 1 surviving article, got %d", len(articles))
	}
	a := articles[0]
	if a.Title != "AI music startup raises" {
		t.Fatalf("wrong survivor: %q", a.Title)
	}
	if a.Source != "example.com" {
		t.Fatalf("source should come from the link host, got %q", a.Source)
	}
	if a.PublishedAt.IsZero() {
		t.Fatal("survivor must carry a parsed timestamp")
	}
}

func TestFetchRespectsMaxCount(t *testing.T) {
	now := time.Now().Add(-time.Hour).Format(time.RFC1123Z)
	var items string
	for i := 0; i < 5; i++ {
		items += rssItem(fmt.Sprintf("Story %d", i), fmt.Sprintf("https://example.com/%d", i), now)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDoc(items))
	}))
	defer srv.Close()

	articles, err := NewFetcher(5*time.Second).Fetch(srv.URL, 3, 0)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles with maxCount=3, got %d", len(articles))
	}
}
