package dedup

import (
	"strings"

	"tunebot/types"
)

// Representative returns the group member with the latest published
// timestamp. When several members share that timestamp the first one in the
// group's stored order wins, so selection is stable and reproducible.
//
// An empty group is a contract violation, not an input condition, and panics.
func Representative(g *types.Group) *types.Article {
	if g == nil || len(g.Articles) == 0 {
		panic("dedup: Representative called with empty group")
	}

	best := g.Articles[0]
	for _, a := range g.Articles[1:] {
		if a.PublishedAt.After(best.PublishedAt) {
			best = a
		}
	}
	return best
}

// MergedDocument builds the alternate, simple-concatenation output for a
// group: every unique non-blank paragraph across all member bodies, exact
// text-equality dedup, first-seen order. Used only in merged output mode;
// the pipeline never mixes it with representative selection in one run.
func MergedDocument(g *types.Group) string {
	if g == nil || len(g.Articles) == 0 {
		panic("dedup: MergedDocument called with empty group")
	}

	seen := make(map[string]struct{})
	var paragraphs []string
	for _, a := range g.Articles {
		for _, p := range strings.Split(a.Body(), "\n") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
