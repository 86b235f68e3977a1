package dedup

import (
	"tunebot/config"
	"tunebot/types"
)

// GroupArticles partitions articles into story groups by lexical title
// similarity against each group's anchor title (the title of the article that
// created the group). Articles are processed in the order given; the caller's
// concatenation order is the processing order.
//
// Under config.PolicyFirstMatch an article joins the FIRST group, in
// group-creation order, whose anchor scores strictly above the threshold,
// even when a later anchor would score higher. This greedy scan means the
// outcome can change when the input is permuted; that order dependence is
// intentional and locked in by tests. config.PolicyBestMatch instead scans
// every anchor and joins the highest-scoring one above the threshold.
//
// Membership is never re-evaluated against other members, only the anchor,
// so a group can drift when articles arrive in an unlucky order.
//
// Pure in-memory computation: never fails for any well-formed input, and an
// empty input yields an empty result.
func GroupArticles(articles []*types.Article, threshold float64, policy config.GroupingPolicy) []*types.Group {
	groups := make([]*types.Group, 0)
	anchors := make([]map[string]struct{}, 0)

	for _, article := range articles {
		tokens := tokenize(article.Title)

		matched := -1
		if policy == config.PolicyBestMatch {
			best := threshold
			for i, anchor := range anchors {
				if sim := jaccard(tokens, anchor); sim > best {
					best = sim
					matched = i
				}
			}
		} else {
			for i, anchor := range anchors {
				if jaccard(tokens, anchor) > threshold {
					matched = i
					break
				}
			}
		}

		if matched >= 0 {
			groups[matched].Articles = append(groups[matched].Articles, article)
			continue
		}

		groups = append(groups, &types.Group{
			Anchor:   article.Title,
			Articles: []*types.Article{article},
		})
		anchors = append(anchors, tokens)
	}

	return groups
}
