package dedup

import "strings"

// tokenize splits a title on whitespace and lowercases every token.
// No stemming, no stopword removal, no punctuation stripping: two headlines
// only count as overlapping where their words match verbatim.
func tokenize(title string) map[string]struct{} {
	fields := strings.Fields(title)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[strings.ToLower(f)] = struct{}{}
	}
	return set
}

// Similarity computes the Jaccard similarity of two titles' token sets,
// in [0,1]. Symmetric and deterministic. If both titles tokenize to nothing
// the result is 0; callers never hit that case because an empty title cannot
// pass the relevance filter.
func Similarity(a, b string) float64 {
	return jaccard(tokenize(a), tokenize(b))
}

// jaccard is the set-level form of Similarity, used by the grouper so each
// article's token set is computed once.
func jaccard(a, b map[string]struct{}) float64 {
	union := len(b)
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
