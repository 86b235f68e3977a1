package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"tunebot/api"
	"tunebot/audio"
	"tunebot/config"
	"tunebot/feeds"
	"tunebot/pipeline"
	"tunebot/speech"
	"tunebot/storage"
	"tunebot/summarize"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	feed := flag.String("feed", "", "RSS feed preset name or URL, overrides FEEDS (use -feeds to list presets)")
	listFeeds := flag.Bool("feeds", false, "List available feed presets and exit")
	dryRun := flag.Bool("dry-run", false, "Fetch, group and summarize but skip speech synthesis and uploads")
	serve := flag.Bool("serve", false, "Start the HTTP API instead of running once")
	flag.Parse()

	if *listFeeds {
		fmt.Println("Available feed presets:")

		names := make([]string, 0, len(config.FeedPresets))
		for name := range config.FeedPresets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("  %-10s %s\n", name, config.FeedPresets[name])
		}
		fmt.Printf("\nDefault: %s\n", config.DefaultFeedPreset)
		os.Exit(0)
	}

	// Log to stderr so the report on stdout stays clean
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	if *feed != "" {
		cfg.FeedURLs = []string{config.ResolveFeedURL(*feed)}
	}

	runner := buildRunner(cfg)
	runner.DryRun = *dryRun

	if *serve {
		addr := ":8080"
		if v := os.Getenv("PORT"); v != "" {
			addr = ":" + v
		}
		router := api.NewRouter(api.NewServer(runner))
		log.Printf("Starting API server on %s", addr)
		log.Println("API endpoints available:")
		log.Println("  GET  /api/health")
		log.Println("  POST /api/run")
		log.Println("  GET  /api/report")
		log.Println("  GET  /api/stories")
		if err := router.Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	if cfg.Bulletin != "" && !*dryRun {
		buildBulletin(report, cfg.Bulletin)
	}

	fmt.Println(report.Render())
}

// buildRunner wires the pipeline's collaborators from config. Providers
// without credentials are left nil; the pipeline degrades per step (title
// fallback for summaries, no narration without a speech key).
func buildRunner(cfg config.Config) *pipeline.Runner {
	deps := pipeline.Deps{
		Fetcher:   feeds.NewFetcher(cfg.HTTPTimeout),
		Extractor: feeds.NewExtractor(cfg.HTTPTimeout),
	}

	if cfg.CohereAPIKey != "" {
		deps.Summarizer = summarize.NewCohereSummarizer(cfg.CohereAPIKey, cfg.CohereModel, cfg.HTTPTimeout)
	} else {
		log.Println("COHERE_API_KEY not set; story summaries fall back to titles")
	}

	if cfg.OpenAIAPIKey != "" {
		deps.Synthesizer = speech.NewOpenAISynthesizer(cfg.OpenAIAPIKey, cfg.TTSVoice)
	} else {
		log.Println("OPENAI_API_KEY not set; narration disabled")
	}

	if cfg.S3Bucket != "" {
		s3, err := storage.NewS3(context.Background(), storage.S3Config{
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		} else {
			deps.Uploader = s3
		}
	} else {
		log.Println("S3 not configured; skipping uploads")
	}

	return pipeline.NewRunner(cfg, deps)
}

// buildBulletin concatenates the run's narrated clips into one MP3.
func buildBulletin(report *pipeline.Report, outputPath string) {
	var clips []string
	for _, s := range report.Stories {
		if s.AudioPath != "" {
			clips = append(clips, s.AudioPath)
		}
	}
	if len(clips) == 0 {
		log.Println("No narrated stories; skipping bulletin")
		return
	}
	if err := audio.BuildBulletin(clips, outputPath); err != nil {
		log.Printf("Warning: bulletin build failed: %v", err)
		return
	}
	log.Printf("Bulletin written to %s", outputPath)
}
