package summarize

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereSummarizer implements Summarizer on the Cohere chat API.
// Docs: https://docs.cohere.com/reference/chat
type CohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

// NewCohereSummarizer creates a summarizer for the given API key and model.
func NewCohereSummarizer(apiKey, model string, timeout time.Duration) *CohereSummarizer {
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the
	// Cohere endpoint.
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereSummarizer{client: client, model: model}
}

// Summarize asks the model for a spoken-style summary of one article.
func (s *CohereSummarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	message := fmt.Sprintf("Title: %s\n\nArticle:\n%s", title, text)

	resp, err := s.client.Chat(ctx, &cohere.ChatRequest{
		Message:  message,
		Model:    strPtr(s.model),
		Preamble: strPtr(systemPreamble),
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat failed: %w", err)
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return "", fmt.Errorf("cohere returned an empty summary")
	}
	return summary, nil
}

func strPtr(s string) *string { return &s }
