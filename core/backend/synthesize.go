package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/go-audio/audio"

	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/pkg/media"
	"github.com/mudler/echoscribe/pkg/sound"
)

// Synthesizer narrates text through a hosted text-to-speech model,
// conditioned on a reference speaker x-vector. The model answers with raw
// 16-bit little-endian PCM at 16 kHz.
type Synthesizer struct {
	client   *inferenceClient
	audioDir string
}

func NewSynthesizer(appConfig *config.ApplicationConfig) *Synthesizer {
	return &Synthesizer{
		client:   newInferenceClient(appConfig.SynthesisURL, appConfig.HuggingFaceToken),
		audioDir: appConfig.AudioDir,
	}
}

type synthesizeParameters struct {
	SpeakerEmbeddings []float32 `json:"speaker_embeddings"`
}

type synthesizeRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters synthesizeParameters `json:"parameters"`
}

// Synthesize writes the narrated summary to the job's summary WAV file and
// returns its file name (not its path: the caller serves it from the audio
// directory).
func (s *Synthesizer) Synthesize(ctx context.Context, text string, embedding []float32, jobID string) (string, error) {
	body, err := json.Marshal(synthesizeRequest{
		Inputs:     text,
		Parameters: synthesizeParameters{SpeakerEmbeddings: embedding},
	})
	if err != nil {
		return "", err
	}

	pcm, err := s.client.postJSON(ctx, body)
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}
	if len(pcm) == 0 || len(pcm)%2 != 0 {
		return "", fmt.Errorf("speech synthesis returned %d bytes, want a non-empty 16-bit PCM stream", len(pcm))
	}

	samples := sound.ConvertInt16ToInt(sound.BytesToInt16sLE(pcm))
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: config.SynthesisSampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}

	fileName := jobID + "_summary.wav"
	if err := media.EncodeWav(filepath.Join(s.audioDir, fileName), buf); err != nil {
		return "", err
	}
	return fileName, nil
}
