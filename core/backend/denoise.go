package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-audio/audio"

	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/schema"
	"github.com/mudler/echoscribe/pkg/media"
	"github.com/mudler/xlog"
)

// Denoiser runs the waveform through an external spectral noise-reduction
// estimator. Output length and sample rate match the input exactly.
type Denoiser struct {
	appConfig *config.ApplicationConfig
}

func NewDenoiser(appConfig *config.ApplicationConfig) *Denoiser {
	return &Denoiser{appConfig: appConfig}
}

// Denoise cleans the audio at srcPath and writes the result to the job's
// cleaned WAV file. Failures are part of audio preparation and surface as
// FetchError.
func (d *Denoiser) Denoise(ctx context.Context, in *schema.AudioBuffer, srcPath, jobID string) (*schema.AudioBuffer, string, error) {
	rawPath := filepath.Join(d.appConfig.AudioDir, jobID+"_denoised.wav")
	cleanedPath := filepath.Join(d.appConfig.AudioDir, jobID+"_cleaned.wav")

	if err := media.DenoiseWav(ctx, srcPath, rawPath); err != nil {
		return nil, "", &FetchError{Err: err}
	}

	buf, err := media.DecodeWav(rawPath)
	if err != nil {
		return nil, "", &FetchError{Err: err}
	}
	if buf.Format.SampleRate != in.SampleRate {
		return nil, "", &FetchError{Err: fmt.Errorf("denoiser changed sample rate from %d to %d", in.SampleRate, buf.Format.SampleRate)}
	}

	// The estimator may pad or drop a handful of samples at the tail when
	// re-encoding; the contract is exact length preservation.
	if len(buf.Data) != len(in.Data) {
		xlog.Debug("clamping denoised audio", "jobID", jobID, "got", len(buf.Data), "want", len(in.Data))
		buf.Data = ClampToLength(buf.Data, len(in.Data))
	}

	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: in.SampleRate},
		Data:           buf.Data,
		SourceBitDepth: 16,
	}
	if err := media.EncodeWav(cleanedPath, out); err != nil {
		return nil, "", &FetchError{Err: err}
	}

	return &schema.AudioBuffer{
		Data:       out.AsFloat32Buffer().Data,
		SampleRate: in.SampleRate,
	}, cleanedPath, nil
}

// ClampToLength truncates or zero-pads data to exactly length samples.
func ClampToLength(data []int, length int) []int {
	if len(data) >= length {
		return data[:length]
	}
	out := make([]int, length)
	copy(out, data)
	return out
}
