package dedup

import (
	"testing"
	"time"

	"tunebot/config"
	"tunebot/types"
)

func articleWithTitle(title string) *types.Article {
	return &types.Article{
		ID:          types.GenerateID(title),
		Title:       title,
		PublishedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func articlesFromTitles(titles ...string) []*types.Article {
	out := make([]*types.Article, len(titles))
	for i, title := range titles {
		out[i] = articleWithTitle(title)
	}
	return out
}

func groupTitles(g *types.Group) []string {
	titles := make([]string, len(g.Articles))
	for i, a := range g.Articles {
		titles[i] = a.Title
	}
	return titles
}

func TestGroupArticlesMergesNearDuplicates(t *testing.T) {
	articles := articlesFromTitles(
		"Marlon Wayans drops AI diss track on Soulja Boy",
		"Marlon Wayans releases AI diss track vs Soulja Boy",
		"Taylor Swift bashes AI music",
	)

	groups := GroupArticles(articles, 0.5, config.PolicyFirstMatch)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Size() != 2 {
		t.Fatalf("expected first group to hold both Wayans headlines, got %v", groupTitles(groups[0]))
	}
	if groups[0].Anchor != articles[0].Title {
		t.Fatalf("anchor should be the first-inserted title, got %q", groups[0].Anchor)
	}
	if groups[1].Size() != 1 || groups[1].Articles[0].Title != articles[2].Title {
		t.Fatalf("expected singleton group for the Swift headline, got %v", groupTitles(groups[1]))
	}
}

func TestGroupArticlesThresholdIsStrict(t *testing.T) {
	// Exactly 50% token overlap must not merge: the cutoff is >, not >=.
	articles := articlesFromTitles("ai music expands", "ai music retreats")

	groups := GroupArticles(articles, 0.5, config.PolicyFirstMatch)
	if len(groups) != 2 {
		t.Fatalf("titles at exactly the threshold merged; got %d group(s)", len(groups))
	}
}

func TestGroupArticlesEmptyInput(t *testing.T) {
	groups := GroupArticles(nil, 0.5, config.PolicyFirstMatch)
	if len(groups) != 0 {
		t.Fatalf("expected no groups for empty input, got %d", len(groups))
	}
}

func TestGroupArticlesIdenticalTitles(t *testing.T) {
	articles := articlesFromTitles(
		"AI music hits the charts",
		"AI music hits the charts",
		"AI music hits the charts",
	)
	groups := GroupArticles(articles, 0.5, config.PolicyFirstMatch)
	if len(groups) != 1 || groups[0].Size() != 3 {
		t.Fatalf("identical titles should form one group of 3, got %d group(s)", len(groups))
	}
}

func TestGroupArticlesSingleElement(t *testing.T) {
	groups := GroupArticles(articlesFromTitles("AI music hits the charts"), 0.5, config.PolicyFirstMatch)
	if len(groups) != 1 || groups[0].Size() != 1 {
		t.Fatalf("single article should form one singleton group, got %d group(s)", len(groups))
	}
}

// Fixture where the policies diverge. With tokens written as sets:
//
//	anchorA = {ai music labels fight piracy}
//	anchorB = {music labels fight lawsuit streaming courts}
//	probe   = {ai music labels fight lawsuit streaming}
//
// probe vs anchorA = 4/7 ≈ 0.57, probe vs anchorB = 5/7 ≈ 0.71,
// anchorA vs anchorB = 3/8 ≈ 0.375 (so A and B anchor separate groups).
const (
	anchorA = "ai music labels fight piracy"
	anchorB = "music labels fight lawsuit streaming courts"
	probe   = "ai music labels fight lawsuit streaming"
)

func TestGroupArticlesFirstMatchNotBestMatch(t *testing.T) {
	articles := articlesFromTitles(anchorA, anchorB, probe)

	groups := GroupArticles(articles, 0.5, config.PolicyFirstMatch)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// First-match stops at anchorA even though anchorB scores higher.
	if groups[0].Size() != 2 || groups[0].Articles[1].Title != probe {
		t.Fatalf("first-match should attach probe to the earlier anchor, got %v / %v",
			groupTitles(groups[0]), groupTitles(groups[1]))
	}

	best := GroupArticles(articles, 0.5, config.PolicyBestMatch)
	if len(best) != 2 {
		t.Fatalf("expected 2 groups under best-match, got %d", len(best))
	}
	if best[1].Size() != 2 || best[1].Articles[1].Title != probe {
		t.Fatalf("best-match should attach probe to the higher-scoring anchor, got %v / %v",
			groupTitles(best[0]), groupTitles(best[1]))
	}
}

func TestGroupArticlesOrderDependence(t *testing.T) {
	// Same input twice gives the same membership.
	run := func(titles ...string) []*types.Group {
		return GroupArticles(articlesFromTitles(titles...), 0.5, config.PolicyFirstMatch)
	}
	a := run(anchorA, anchorB, probe)
	b := run(anchorA, anchorB, probe)
	for i := range a {
		if a[i].Anchor != b[i].Anchor || a[i].Size() != b[i].Size() {
			t.Fatalf("grouping not idempotent for identical input order")
		}
	}

	// Permuting the input changes the outcome: with anchorB first, the probe
	// now lands in anchorB's group. Greedy first-match grouping is
	// order-dependent by design, not order-independent.
	permuted := run(anchorB, anchorA, probe)
	if permuted[0].Size() != 2 || permuted[0].Articles[1].Title != probe {
		t.Fatalf("expected permuted order to move probe into the %q group, got %v / %v",
			anchorB, groupTitles(permuted[0]), groupTitles(permuted[1]))
	}
	if a[0].Size() != 2 || a[0].Anchor != anchorA {
		t.Fatalf("expected original order to keep probe in the %q group", anchorA)
	}
}
