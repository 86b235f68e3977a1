package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article represents a single fetched news item. Optional fields use their
// zero value as the "absent" marker; PublishedAt is never defaulted, an
// article with a zero timestamp is invalid and dropped at the fetch stage.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Source          string    `json:"source"`
	PublishedAt     time.Time `json:"published_at"`
	FetchedAt       time.Time `json:"fetched_at"`
	Summary         string    `json:"summary,omitempty"`
	FullContent     string    `json:"full_content,omitempty"`
	FullContentText string    `json:"full_content_text,omitempty"`
	ExtractionError string    `json:"extraction_error,omitempty"`
}

// HasFullContent reports whether full text has been extracted for the article.
// Full content is fetched lazily, only for a group's representative.
func (a *Article) HasFullContent() bool {
	return a.FullContentText != ""
}

// Body returns the best available text for the article: extracted full text
// when present, otherwise the feed preview.
func (a *Article) Body() string {
	if a.HasFullContent() {
		return a.FullContentText
	}
	return a.Summary
}

// Group is an ordered cluster of articles believed to report the same story.
// Membership was decided against the anchor title only, never re-evaluated
// between members, so insertion order matters.
type Group struct {
	Anchor   string     `json:"anchor"`
	Articles []*Article `json:"articles"`
}

// Size returns the number of member articles.
func (g *Group) Size() int { return len(g.Articles) }

// Sources returns the display names of every member's origin publication,
// in member order, without duplicates.
func (g *Group) Sources() []string {
	seen := make(map[string]struct{}, len(g.Articles))
	out := make([]string, 0, len(g.Articles))
	for _, a := range g.Articles {
		if a.Source == "" {
			continue
		}
		if _, ok := seen[a.Source]; ok {
			continue
		}
		seen[a.Source] = struct{}{}
		out = append(out, a.Source)
	}
	return out
}

// GenerateID creates a short, stable ID by hashing the article URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
