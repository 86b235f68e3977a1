package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer implements Synthesizer on the OpenAI speech endpoint,
// producing MP3 audio.
type OpenAISynthesizer struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

// NewOpenAISynthesizer creates a synthesizer for the given API key and voice.
// An unknown voice name falls back to "onyx".
func NewOpenAISynthesizer(apiKey, voice string) *OpenAISynthesizer {
	v := openai.SpeechVoice(voice)
	switch v {
	case openai.VoiceAlloy, openai.VoiceEcho, openai.VoiceFable,
		openai.VoiceOnyx, openai.VoiceNova, openai.VoiceShimmer:
	default:
		v = openai.VoiceOnyx
	}
	return &OpenAISynthesizer{
		client: openai.NewClient(apiKey),
		voice:  v,
	}
}

// Synthesize converts text to MP3 bytes.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}
	return audio, nil
}
