package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// BuildBulletin concatenates the per-story MP3s, in the order given, into a
// single bulletin MP3 at outputPath. Uses the ffmpeg concat demuxer with
// stream copy, so inputs must share one encoding (they do: all come from the
// same synthesis voice and format).
func BuildBulletin(clipPaths []string, outputPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("no audio clips to concatenate")
	}

	listPath, err := writeConcatList(clipPaths)
	if err != nil {
		return fmt.Errorf("failed to write concat list: %w", err)
	}
	defer os.Remove(listPath)

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create bulletin directory: %w", err)
		}
	}

	err = ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(outputPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}
	return nil
}

// writeConcatList produces the file-list format the concat demuxer expects,
// one `file '<path>'` line per clip.
func writeConcatList(clipPaths []string) (string, error) {
	f, err := os.CreateTemp("", "bulletin-*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, p := range clipPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(abs, "'", `'\''`))
	}
	if _, err := f.WriteString(b.String()); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
