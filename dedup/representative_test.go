package dedup

import (
	"testing"
	"time"

	"tunebot/types"
)

func timedArticle(title string, published time.Time) *types.Article {
	return &types.Article{
		ID:          types.GenerateID(title),
		Title:       title,
		PublishedAt: published,
	}
}

func TestRepresentativePicksLatest(t *testing.T) {
	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	g := &types.Group{
		Anchor: "a",
		Articles: []*types.Article{
			timedArticle("a", base),
			timedArticle("b", base.Add(2*time.Hour)),
			timedArticle("c", base.Add(time.Hour)),
		},
	}

	if got := Representative(g); got.Title != "b" {
		t.Fatalf("Representative picked %q; want the latest article %q", got.Title, "b")
	}
}

func TestRepresentativeTieBreaksOnInsertionOrder(t *testing.T) {
	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	latest := base.Add(3 * time.Hour)
	g := &types.Group{
		Anchor: "a",
		Articles: []*types.Article{
			timedArticle("a", base),
			timedArticle("first-latest", latest),
			timedArticle("second-latest", latest),
		},
	}

	if got := Representative(g); got.Title != "first-latest" {
		t.Fatalf("tie-break picked %q; want first-inserted %q", got.Title, "first-latest")
	}
}

func TestRepresentativePanicsOnEmptyGroup(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty group")
		}
	}()
	Representative(&types.Group{})
}

func TestMergedDocument(t *testing.T) {
	g := &types.Group{
		Anchor: "a",
		Articles: []*types.Article{
			{Title: "a", Summary: "First paragraph.\n\nShared paragraph."},
			{Title: "b", Summary: "Shared paragraph.\nSecond paragraph."},
			{Title: "c", Summary: "   \n"},
		},
	}

	want := "First paragraph.\n\nShared paragraph.\n\nSecond paragraph."
	if got := MergedDocument(g); got != want {
		t.Fatalf("MergedDocument = %q; want %q", got, want)
	}
}

func TestDedupByTitle(t *testing.T) {
	articles := []*types.Article{
		{Title: "AI music boom", Source: "one"},
		{Title: "ai MUSIC boom", Source: "two"},
		{Title: "Different story", Source: "three"},
	}

	out := DedupByTitle(articles)
	if len(out) != 2 {
		t.Fatalf("expected 2 articles after dedup, got %d", len(out))
	}
	if out[0].Source != "one" {
		t.Fatalf("first-seen occurrence should win, got source %q", out[0].Source)
	}
}
