package application

import (
	"fmt"
	"os"

	"github.com/mudler/xlog"
	"github.com/schollz/progressbar/v3"

	"github.com/mudler/echoscribe/core/backend"
	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/services"
	"github.com/mudler/echoscribe/internal"
	"github.com/mudler/echoscribe/pkg/xvector"
)

// New runs the startup phase: scratch directories, the speaker x-vector
// table, the stage clients. Everything built here is read-only for the
// process lifetime and safe for concurrent requests.
func New(opts ...config.AppOption) (*Application, error) {
	options := config.NewApplicationConfig(opts...)
	application := newApplication(options)

	xlog.Info("Starting EchoScribe", "audioDir", options.AudioDir)
	xlog.Info("EchoScribe version", "version", internal.PrintableVersion())

	if options.AudioDir == "" {
		return nil, fmt.Errorf("audio directory cannot be empty")
	}
	if err := os.MkdirAll(options.AudioDir, 0750); err != nil {
		return nil, fmt.Errorf("unable to create audio directory: %q", err)
	}

	if options.HuggingFaceToken == "" {
		xlog.Warn("HF_TOKEN is not set, hosted model calls may be rejected")
	}

	voice, err := loadVoiceEmbedding(options)
	if err != nil {
		return nil, err
	}
	application.voiceEmbedding = voice
	xlog.Info("reference voice loaded", "index", config.VoiceEmbeddingIndex, "dimensions", len(voice))

	application.processor = services.NewVideoProcessor(
		backend.NewFetcher(options),
		backend.NewDenoiser(options),
		backend.NewTranscriber(options),
		backend.NewDiarizer(options),
		backend.NewSummarizer(options),
		backend.NewSynthesizer(options),
		voice,
	)

	return application, nil
}

func loadVoiceEmbedding(options *config.ApplicationConfig) ([]float32, error) {
	progressBar := progressbar.NewOptions(
		1000,
		progressbar.OptionSetDescription("downloading x-vector table"),
		progressbar.OptionShowBytes(false),
		progressbar.OptionClearOnFinish(),
	)
	progressCallback := func(fileName string, current string, total string, percentage float64) {
		if err := progressBar.Set(int(percentage * 10)); err != nil {
			xlog.Debug("error while updating progress bar", "fileName", fileName, "error", err)
		}
	}

	dataPath, err := xvector.EnsureTable(options.Context, options.EmbeddingsDir, config.EmbeddingsTableURL, progressCallback)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare the x-vector table: %w", err)
	}

	return xvector.LoadEmbedding(dataPath, config.VoiceEmbeddingIndex)
}
