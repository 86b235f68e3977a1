package dedup

import (
	"strings"

	"tunebot/types"
)

// DedupByTitle removes exact duplicates from a merged multi-feed batch by
// lowercased title equality, keeping the first occurrence. This is the flat
// merge-point dedup; near-duplicate detection is GroupArticles' job and the
// two are applied at different pipeline stages.
func DedupByTitle(articles []*types.Article) []*types.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]*types.Article, 0, len(articles))
	for _, a := range articles {
		key := strings.ToLower(a.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
