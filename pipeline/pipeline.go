package pipeline

import (
	"context"
	"log"
	"time"

	"tunebot/config"
	"tunebot/dedup"
	"tunebot/speech"
	"tunebot/summarize"
	"tunebot/types"
)

// Fetcher retrieves candidate articles from one feed.
type Fetcher interface {
	Fetch(feedURL string, maxCount int, lookback time.Duration) ([]*types.Article, error)
}

// Extractor fetches an article's readable full text in place.
type Extractor interface {
	Extract(article *types.Article) error
}

// Uploader publishes narrated audio to object storage.
type Uploader interface {
	AudioExists(ctx context.Context, bucket, prefix, name string) (bool, error)
	UploadAudio(ctx context.Context, bucket, prefix, name string, audio []byte) error
}

// Deps carries the pipeline's collaborators. Summarizer, Synthesizer and
// Uploader may be nil; the corresponding steps are then skipped.
type Deps struct {
	Fetcher     Fetcher
	Extractor   Extractor
	Summarizer  summarize.Summarizer
	Synthesizer speech.Synthesizer
	Uploader    Uploader
}

// Runner executes one fetch-filter-group-narrate batch.
type Runner struct {
	cfg  config.Config
	deps Deps

	// DryRun stops after summarization: no speech synthesis, no uploads.
	DryRun bool
}

// NewRunner creates a runner over the given config and collaborators.
func NewRunner(cfg config.Config, deps Deps) *Runner {
	return &Runner{cfg: cfg, deps: deps}
}

// Run executes one full cycle. Provider failures inside per-story processing
// are logged and isolated; one story's failure never aborts the rest. The
// returned error covers only setup-level problems, and a run that fetched
// zero candidates ends early and cleanly with an empty report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{StartedAt: time.Now()}

	// Step 1: fetch candidates from every configured feed.
	var candidates []*types.Article
	for _, feedURL := range r.cfg.FeedURLs {
		articles, err := r.deps.Fetcher.Fetch(feedURL, r.cfg.MaxArticles, r.cfg.Lookback)
		if err != nil {
			log.Printf("Warning: failed to fetch %s: %v", feedURL, err)
			continue
		}
		log.Printf("Fetched %d articles from %s", len(articles), feedURL)
		candidates = append(candidates, articles...)
	}
	report.Fetched = len(candidates)

	// Step 2: merge-point dedup across feeds, exact lowercased titles.
	candidates = dedup.DedupByTitle(candidates)

	// Step 3: topic relevance.
	relevant := make([]*types.Article, 0, len(candidates))
	for _, a := range candidates {
		if dedup.IsRelevant(a.Title, a.Summary) {
			relevant = append(relevant, a)
		}
	}
	report.Relevant = len(relevant)
	log.Printf("%d of %d candidates are about AI and music", len(relevant), len(candidates))

	if len(relevant) == 0 {
		log.Println("Nothing to do")
		report.FinishedAt = time.Now()
		return report, nil
	}

	// Step 4: similarity grouping into stories.
	groups := dedup.GroupArticles(relevant, r.cfg.SimilarityThreshold, r.cfg.GroupingPolicy)
	report.Groups = len(groups)
	log.Printf("Grouped into %d distinct stories", len(groups))

	// Step 5: one story at a time, with a constant pause between
	// provider-bound iterations to respect third-party rate limits.
	for i, g := range groups {
		story := r.processGroup(ctx, g, i+1, len(groups))
		report.Stories = append(report.Stories, story)
		if story.AudioPath != "" {
			report.Narrated++
		}
		if i < len(groups)-1 && r.cfg.ItemDelay > 0 {
			time.Sleep(r.cfg.ItemDelay)
		}
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// processGroup carries one story group through extract, summarize, synthesize
// and upload. Every provider failure is logged and degrades the story rather
// than failing the run.
func (r *Runner) processGroup(ctx context.Context, g *types.Group, current, total int) StoryResult {
	story := StoryResult{
		Anchor:  g.Anchor,
		Sources: g.Sources(),
		Members: g.Size(),
	}

	var title, text string
	if r.cfg.OutputMode == config.ModeMerged {
		title = g.Anchor
		text = dedup.MergedDocument(g)
		story.Title = title
	} else {
		rep := dedup.Representative(g)
		story.Title = rep.Title
		title = rep.Title

		if r.deps.Extractor != nil && !rep.HasFullContent() {
			if err := r.deps.Extractor.Extract(rep); err != nil {
				log.Printf("  [%d/%d] extraction failed, using feed preview: %v", current, total, err)
			}
		}
		text = rep.Body()
	}

	// Summarize; on failure fall back to the title verbatim.
	summary := title
	if r.deps.Summarizer != nil {
		s, err := r.deps.Summarizer.Summarize(ctx, title, text)
		if err != nil {
			log.Printf("  [%d/%d] summarization failed, falling back to title: %v", current, total, err)
		} else {
			summary = s
		}
	}
	story.Summary = summary

	if r.DryRun || r.deps.Synthesizer == nil {
		log.Printf("  [%d/%d] %s (dry run, no audio)", current, total, story.Title)
		return story
	}

	audio, err := r.deps.Synthesizer.Synthesize(ctx, summary)
	if err != nil {
		// Skip the whole story, keep going with the next one.
		log.Printf("  [%d/%d] speech synthesis failed, skipping story: %v", current, total, err)
		story.Error = err.Error()
		return story
	}

	name := speech.FilenameForSummary(summary)
	path, err := speech.SaveAudio(r.cfg.AudioDir, name, audio)
	if err != nil {
		log.Printf("  [%d/%d] failed to save audio, skipping story: %v", current, total, err)
		story.Error = err.Error()
		return story
	}
	story.AudioPath = path
	log.Printf("  [%d/%d] ✓ narrated: %s", current, total, path)

	if r.deps.Uploader != nil && r.cfg.S3Bucket != "" {
		timeout := r.cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = config.DefaultHTTPTimeout
		}
		uctx, cancel := context.WithTimeout(ctx, timeout)
		story.Uploaded = r.uploadAudio(uctx, name, audio, current, total)
		cancel()
	}

	return story
}

// uploadAudio publishes one clip, skipping the put when the same key was
// already uploaded by an earlier run. A failed existence check is logged and
// the upload attempted anyway.
func (r *Runner) uploadAudio(ctx context.Context, name string, audio []byte, current, total int) bool {
	exists, err := r.deps.Uploader.AudioExists(ctx, r.cfg.S3Bucket, r.cfg.S3Prefix, name)
	if err != nil {
		log.Printf("  [%d/%d] S3 existence check failed: %v", current, total, err)
	}
	if exists {
		log.Printf("  [%d/%d] already uploaded, skipping: %s", current, total, name)
		return true
	}

	if err := r.deps.Uploader.UploadAudio(ctx, r.cfg.S3Bucket, r.cfg.S3Prefix, name, audio); err != nil {
		log.Printf("  [%d/%d] S3 upload failed: %v", current, total, err)
		return false
	}
	return true
}
