package config

import "testing"

func TestLoadRejectsUnknownPolicyAndMode(t *testing.T) {
	t.Setenv("GROUPING_POLICY", "best-macth")
	t.Setenv("OUTPUT_MODE", "mergd")

	cfg := Load()
	if cfg.GroupingPolicy != PolicyFirstMatch {
		t.Fatalf("typo'd GROUPING_POLICY should fall back to %q, got %q", PolicyFirstMatch, cfg.GroupingPolicy)
	}
	if cfg.OutputMode != ModeRepresentative {
		t.Fatalf("typo'd OUTPUT_MODE should fall back to %q, got %q", ModeRepresentative, cfg.OutputMode)
	}
}

func TestLoadAcceptsKnownPolicyAndMode(t *testing.T) {
	t.Setenv("GROUPING_POLICY", string(PolicyBestMatch))
	t.Setenv("OUTPUT_MODE", string(ModeMerged))

	cfg := Load()
	if cfg.GroupingPolicy != PolicyBestMatch {
		t.Fatalf("expected %q, got %q", PolicyBestMatch, cfg.GroupingPolicy)
	}
	if cfg.OutputMode != ModeMerged {
		t.Fatalf("expected %q, got %q", ModeMerged, cfg.OutputMode)
	}
}

func TestResolveFeedURL(t *testing.T) {
	if got := ResolveFeedURL("gnews"); got != FeedPresets["gnews"] {
		t.Fatalf("preset name should resolve to its URL, got %q", got)
	}
	direct := "https://example.com/rss"
	if got := ResolveFeedURL(direct); got != direct {
		t.Fatalf("non-preset input should pass through, got %q", got)
	}
}
