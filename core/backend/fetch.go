package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/schema"
	"github.com/mudler/echoscribe/pkg/media"
	"github.com/mudler/xlog"
)

// Fetcher retrieves the audio track of a remote media resource through
// yt-dlp and decodes it to a mono waveform at its native sample rate.
type Fetcher struct {
	appConfig *config.ApplicationConfig
}

func NewFetcher(appConfig *config.ApplicationConfig) *Fetcher {
	return &Fetcher{appConfig: appConfig}
}

// Fetch downloads url and returns the decoded waveform together with the
// path of the scratch WAV file it wrote. All errors are FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url, jobID string) (*schema.AudioBuffer, string, error) {
	downloadPath := filepath.Join(f.appConfig.AudioDir, jobID+"_download.wav")
	originalPath := filepath.Join(f.appConfig.AudioDir, jobID+"_original.wav")

	xlog.Debug("downloading audio track", "jobID", jobID, "url", url)

	if err := media.DownloadAudio(ctx, url, downloadPath); err != nil {
		return nil, "", &FetchError{Err: err}
	}

	// Downmix to mono, keeping the native sample rate.
	if err := media.ToMonoWav(ctx, downloadPath, originalPath); err != nil {
		return nil, "", &FetchError{Err: err}
	}

	buf, err := media.DecodeWav(originalPath)
	if err != nil {
		return nil, "", &FetchError{Err: err}
	}
	if len(buf.Data) == 0 {
		return nil, "", &FetchError{Err: fmt.Errorf("no audio samples in %s", originalPath)}
	}

	return &schema.AudioBuffer{
		Data:       buf.AsFloat32Buffer().Data,
		SampleRate: buf.Format.SampleRate,
	}, originalPath, nil
}
