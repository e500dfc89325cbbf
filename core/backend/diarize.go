package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/schema"
)

// Diarizer partitions a waveform into speaker turns through a hosted
// speaker-diarization model. The speaker-count bounds are fixed policy, not
// request parameters.
type Diarizer struct {
	client *inferenceClient
}

func NewDiarizer(appConfig *config.ApplicationConfig) *Diarizer {
	return &Diarizer{client: newInferenceClient(appConfig.DiarizationURL, appConfig.HuggingFaceToken)}
}

// Diarize uploads the audio at wavPath and returns the speaker turns in the
// order the model emits them. Turns may overlap and need not cover the
// whole recording.
func (d *Diarizer) Diarize(ctx context.Context, wavPath string) ([]schema.DiarizationTurn, error) {
	payload, err := d.client.postAudio(ctx, wavPath, map[string]string{
		"min_speakers": strconv.Itoa(config.MinSpeakers),
		"max_speakers": strconv.Itoa(config.MaxSpeakers),
	})
	if err != nil {
		return nil, fmt.Errorf("diarization failed: %w", err)
	}

	var turns []schema.DiarizationTurn
	if err := json.Unmarshal(payload, &turns); err != nil {
		return nil, fmt.Errorf("diarization returned an unexpected payload: %w", err)
	}
	return turns, nil
}
