package backend

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/schema"
)

// Transcriber converts a waveform into time-stamped text segments through a
// whisper model behind an OpenAI-compatible transcription endpoint.
type Transcriber struct {
	client *openai.Client
}

func NewTranscriber(appConfig *config.ApplicationConfig) *Transcriber {
	clientConfig := openai.DefaultConfig(appConfig.TranscriptionKey)
	clientConfig.BaseURL = appConfig.TranscriptionURL
	return &Transcriber{client: openai.NewClientWithConfig(clientConfig)}
}

// Transcribe returns the segments the model emits, ordered by start time.
// Temperature is pinned to zero so a fixed checkpoint and input always
// yield the same transcript.
func (t *Transcriber) Transcribe(ctx context.Context, wavPath string) ([]schema.TranscriptSegment, error) {
	resp, err := t.client.CreateTranscription(
		ctx,
		openai.AudioRequest{
			Model:       openai.Whisper1,
			FilePath:    wavPath,
			Format:      openai.AudioResponseFormatVerboseJSON,
			Temperature: 0,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments := make([]schema.TranscriptSegment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, schema.TranscriptSegment{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}
	return segments, nil
}
