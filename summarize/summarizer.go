package summarize

import "context"

// Summarizer produces a short spoken-style summary of one news story.
// Implementations never panic on provider failure; callers treat an error as
// "no summary" and fall back to the article title.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}

const systemPreamble = `You are a news curator for a show about AI and music.
Given one news article, write a summary suitable for being read aloud.

Rules:
- 3 to 5 sentences, plain spoken English
- Lead with what happened, then why it matters for AI and music
- Keep names, dates, and numbers from the article
- No markdown, no bullet points, no URLs`
