package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/mudler/echoscribe/core/application"
	cliContext "github.com/mudler/echoscribe/core/cli/context"
	"github.com/mudler/echoscribe/core/config"
	echoscribeHTTP "github.com/mudler/echoscribe/core/http"
	"github.com/mudler/echoscribe/pkg/signals"
	"github.com/mudler/xlog"
)

type RunCMD struct {
	AudioPath        string `env:"ECHOSCRIBE_AUDIO_PATH,AUDIO_PATH" type:"path" default:"${basepath}/audio_files" help:"Scratch directory for downloaded, cleaned and generated audio files" group:"storage"`
	EmbeddingsPath   string `env:"ECHOSCRIBE_EMBEDDINGS_PATH,EMBEDDINGS_PATH" type:"path" default:"${basepath}/audio_files/cmu-arctic-xvectors" help:"Directory holding the speaker x-vector table used to condition narration" group:"storage"`
	Address          string `env:"ECHOSCRIBE_ADDRESS,ADDRESS" default:":8000" help:"Bind address for the API server" group:"api"`
	CORSAllowOrigins string `env:"ECHOSCRIBE_CORS_ALLOW_ORIGINS,CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost" help:"Comma-separated list of origins allowed to call the API" group:"api"`

	HuggingFaceToken string `env:"HF_TOKEN" help:"Access token for the hosted diarization/summarization/synthesis models" group:"models"`
	TranscriptionURL string `env:"ECHOSCRIBE_TRANSCRIPTION_URL,TRANSCRIPTION_URL" default:"http://localhost:8080/v1" help:"Base URL of the OpenAI-compatible transcription endpoint" group:"models"`
	TranscriptionKey string `env:"ECHOSCRIBE_TRANSCRIPTION_KEY,TRANSCRIPTION_KEY" help:"API key for the transcription endpoint, if it requires one" group:"models"`
	DiarizationURL   string `env:"ECHOSCRIBE_DIARIZATION_URL,DIARIZATION_URL" default:"https://api-inference.huggingface.co/models/pyannote/speaker-diarization-3.1" help:"Inference URL of the speaker diarization model" group:"models"`
	SummarizationURL string `env:"ECHOSCRIBE_SUMMARIZATION_URL,SUMMARIZATION_URL" default:"https://api-inference.huggingface.co/models/facebook/bart-large-cnn" help:"Inference URL of the summarization model" group:"models"`
	SynthesisURL     string `env:"ECHOSCRIBE_SYNTHESIS_URL,SYNTHESIS_URL" default:"https://api-inference.huggingface.co/models/microsoft/speecht5_tts" help:"Inference URL of the text-to-speech model" group:"models"`
}

func (r *RunCMD) Run(ctx *cliContext.Context) error {
	opts := []config.AppOption{
		config.WithContext(context.Background()),
		config.WithDebug(ctx.Debug || (ctx.LogLevel != nil && *ctx.LogLevel == "debug")),
		config.WithAudioDir(r.AudioPath),
		config.WithEmbeddingsDir(r.EmbeddingsPath),
		config.WithAPIAddress(r.Address),
		config.WithCorsAllowOrigins(r.CORSAllowOrigins),
		config.WithHuggingFaceToken(r.HuggingFaceToken),
		config.WithTranscriptionService(r.TranscriptionURL, r.TranscriptionKey),
		config.WithDiarizationURL(r.DiarizationURL),
		config.WithSummarizationURL(r.SummarizationURL),
		config.WithSynthesisURL(r.SynthesisURL),
	}

	app, err := application.New(opts...)
	if err != nil {
		return err
	}

	e, err := echoscribeHTTP.API(app)
	if err != nil {
		return err
	}

	signals.RegisterGracefulTerminationHandler(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			xlog.Error("error during server shutdown", "error", err)
		}
	})

	xlog.Info("EchoScribe API is listening", "address", r.Address)
	if err := e.Start(r.Address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
