package speech

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilenameForSummary(t *testing.T) {
	cases := []struct {
		name    string
		summary string
		want    string
	}{
		{"plain words", "Short summary", "Short_summary.mp3"},
		{"punctuation replaced", "AI & music: a new era!", "AI___music__a_new_era_.mp3"},
		{
			"truncated to fifty",
			strings.Repeat("a", 60),
			strings.Repeat("a", 50) + ".mp3",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FilenameForSummary(c.summary); got != c.want {
				t.Fatalf("FilenameForSummary(%q) = %q; want %q", c.summary, got, c.want)
			}
		})
	}
}

func TestSaveAudioCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "audio")
	path, err := SaveAudio(dir, "story.mp3", []byte("mp3-bytes"))
	if err != nil {
		t.Fatalf("SaveAudio failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved audio: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Fatalf("saved audio mismatch: %q", data)
	}
}
