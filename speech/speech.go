package speech

import (
	"context"
	"os"
	"path/filepath"
	"unicode"
)

// Synthesizer converts text to narrated audio. Implementations return the
// raw audio bytes; persisting them is the caller's job.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// FilenameForSummary derives an MP3 filename from the first 50 characters of
// the summary, replacing every non-alphanumeric rune with an underscore.
func FilenameForSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			runes[i] = '_'
		}
	}
	return string(runes) + ".mp3"
}

// SaveAudio writes audio bytes into dir under the given name, creating the
// directory if needed, and returns the full path.
func SaveAudio(dir, name string, audio []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
