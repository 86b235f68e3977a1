package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default configuration values
const (
	// DefaultFeedPreset is the feed used when none is configured
	DefaultFeedPreset = "gnews"

	// DefaultMaxArticles caps how many items are taken per feed
	DefaultMaxArticles = 40

	// DefaultSimilarityThreshold is the Jaccard cutoff for story grouping.
	// Strictly greater-than: a pair at exactly the threshold is not merged.
	DefaultSimilarityThreshold = 0.5

	// DefaultLookback drops articles older than this at the fetch stage
	DefaultLookback = 48 * time.Hour

	// DefaultItemDelay is the constant pause between provider-bound story
	// iterations, purely to respect third-party rate limits
	DefaultItemDelay = 2 * time.Second

	// DefaultHTTPTimeout applies to outbound provider calls
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultAudioDir is where narrated MP3s are written
	DefaultAudioDir = "assets/audio"
)

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"gnews":     "https://news.google.com/rss/search?q=AI+music&hl=en-US&gl=US&ceid=US:en",
	"mbw":       "https://www.musicbusinessworldwide.com/feed/",
	"tr":        "https://www.technologyreview.com/feed/",
	"pitchfork": "https://pitchfork.com/feed/feed-news/rss",
}

// ResolveFeedURL resolves a feed identifier to a URL.
// Preset names map to their URLs; anything else is assumed to be a direct URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// GroupingPolicy selects how an article is matched against existing groups.
type GroupingPolicy string

const (
	// PolicyFirstMatch appends to the first anchor exceeding the threshold,
	// in group-creation order. This is the default and is order-dependent.
	PolicyFirstMatch GroupingPolicy = "first-match"
	// PolicyBestMatch scans every anchor and picks the highest similarity
	// above the threshold. Opt-in alternative to the greedy default.
	PolicyBestMatch GroupingPolicy = "best-match"
)

// OutputMode selects what text a group contributes to summarization.
type OutputMode string

const (
	// ModeRepresentative summarizes the most recent member article.
	ModeRepresentative OutputMode = "representative"
	// ModeMerged summarizes a merged document built from every member's
	// unique paragraphs. Mutually exclusive with ModeRepresentative.
	ModeMerged OutputMode = "merged"
)

// Config carries every knob for a pipeline run. It is built once in main and
// passed down explicitly; nothing reads the environment after Load.
type Config struct {
	FeedURLs            []string
	MaxArticles         int
	Lookback            time.Duration
	SimilarityThreshold float64
	GroupingPolicy      GroupingPolicy
	OutputMode          OutputMode

	AudioDir    string
	ItemDelay   time.Duration
	HTTPTimeout time.Duration

	CohereAPIKey string
	CohereModel  string
	OpenAIAPIKey string
	TTSVoice     string

	// S3 upload is optional; uploads are skipped when Bucket is empty.
	S3Bucket       string
	S3Prefix       string
	S3Region       string
	S3Profile      string
	S3UsePathStyle bool

	// Bulletin, when set, is the output path for one concatenated MP3
	// built from every narrated story of the run.
	Bulletin string
}

// Load builds a Config from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		FeedURLs:            feedURLsFromEnv(),
		MaxArticles:         envInt("MAX_ARTICLES", DefaultMaxArticles),
		Lookback:            envDuration("LOOKBACK", DefaultLookback),
		SimilarityThreshold: envFloat("SIMILARITY_THRESHOLD", DefaultSimilarityThreshold),
		GroupingPolicy:      PolicyFirstMatch,
		OutputMode:          ModeRepresentative,
		AudioDir:            envString("AUDIO_DIR", DefaultAudioDir),
		ItemDelay:           envDuration("ITEM_DELAY", DefaultItemDelay),
		HTTPTimeout:         envDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		CohereAPIKey:        os.Getenv("COHERE_API_KEY"),
		CohereModel:         envString("COHERE_MODEL", "command-r-08-2024"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		TTSVoice:            envString("TTS_VOICE", "onyx"),
		S3Bucket:            strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Prefix:            strings.TrimSpace(os.Getenv("S3_PREFIX")),
		S3Region:            strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:           strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle:      strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
		Bulletin:            os.Getenv("BULLETIN_PATH"),
	}

	if v := strings.TrimSpace(os.Getenv("GROUPING_POLICY")); v != "" {
		switch GroupingPolicy(v) {
		case PolicyFirstMatch, PolicyBestMatch:
			cfg.GroupingPolicy = GroupingPolicy(v)
		default:
			log.Printf("Warning: unknown GROUPING_POLICY %q, using %q", v, PolicyFirstMatch)
		}
	}
	if v := strings.TrimSpace(os.Getenv("OUTPUT_MODE")); v != "" {
		switch OutputMode(v) {
		case ModeRepresentative, ModeMerged:
			cfg.OutputMode = OutputMode(v)
		default:
			log.Printf("Warning: unknown OUTPUT_MODE %q, using %q", v, ModeRepresentative)
		}
	}
	return cfg
}

// feedURLsFromEnv reads FEEDS as a comma-separated list of preset names or
// URLs, falling back to the default preset.
func feedURLsFromEnv() []string {
	raw := strings.TrimSpace(os.Getenv("FEEDS"))
	if raw == "" {
		return []string{ResolveFeedURL(DefaultFeedPreset)}
	}
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		urls = append(urls, ResolveFeedURL(p))
	}
	if len(urls) == 0 {
		return []string{ResolveFeedURL(DefaultFeedPreset)}
	}
	return urls
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
