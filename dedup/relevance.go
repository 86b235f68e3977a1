package dedup

import "strings"

// aiTokens are the strings whose presence marks an article as AI-related.
// Matching is plain substring, no word boundaries, so "ai" also hits inside
// longer words. That looseness is inherited behavior and covered by tests.
var aiTokens = []string{"ai", "artificial intelligence", "generative ai"}

// IsRelevant reports whether an article belongs to the AI x music topic
// intersection: the lowercased title+body must contain at least one AI token
// AND the literal substring "music". Either input may be empty.
func IsRelevant(title, body string) bool {
	text := strings.ToLower(title + " " + body)

	if !strings.Contains(text, "music") {
		return false
	}
	for _, token := range aiTokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
