package feeds

import (
	"fmt"
	"time"

	"tunebot/types"

	readability "github.com/go-shiori/go-readability"
)

// Extractor fetches the readable full text of a web page. Extraction happens
// lazily, only for the article chosen as a group's representative.
type Extractor struct {
	timeout time.Duration
}

// NewExtractor creates an extractor with the given per-page timeout.
func NewExtractor(timeout time.Duration) *Extractor {
	return &Extractor{timeout: timeout}
}

// Extract fetches and extracts full content for a single article in place.
// On failure the article keeps its feed preview and records the error.
func (e *Extractor) Extract(article *types.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(article.URL, e.timeout)
	if err != nil {
		article.ExtractionError = err.Error()
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	article.FullContent = extracted.Content
	article.FullContentText = extracted.TextContent
	return nil
}
