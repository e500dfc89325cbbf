package config

import (
	"context"
)

// Fixed pipeline policy. These are deliberate compile-time constants, not
// request parameters: every request is processed with the same speaker
// bounds, summary bounds and narration voice.
const (
	// MinSpeakers and MaxSpeakers bound the diarization speaker count.
	MinSpeakers = 2
	MaxSpeakers = 7

	// SummaryMinTokens and SummaryMaxTokens bound the abstractive summary.
	SummaryMinTokens = 50
	SummaryMaxTokens = 250

	// VoiceEmbeddingIndex selects the single reference x-vector used to
	// condition all narration, out of the CMU Arctic table.
	VoiceEmbeddingIndex = 7306

	// SynthesisSampleRate is the sample rate of generated narration.
	SynthesisSampleRate = 16000

	// EmbeddingsTableURL is where the x-vector table is fetched from when
	// it is not already present on disk.
	EmbeddingsTableURL = "https://huggingface.co/datasets/Matthijs/cmu-arctic-xvectors/resolve/main/spkrec-xvect.zip"
)

type ApplicationConfig struct {
	Context context.Context
	Debug   bool

	AudioDir      string
	EmbeddingsDir string

	APIAddress       string
	CORSAllowOrigins string

	HuggingFaceToken string
	TranscriptionURL string
	TranscriptionKey string
	DiarizationURL   string
	SummarizationURL string
	SynthesisURL     string
}

type AppOption func(*ApplicationConfig)

func NewApplicationConfig(o ...AppOption) *ApplicationConfig {
	opt := &ApplicationConfig{
		Context:    context.Background(),
		APIAddress: ":8000",
	}
	for _, oo := range o {
		oo(opt)
	}
	return opt
}

func WithContext(ctx context.Context) AppOption {
	return func(o *ApplicationConfig) {
		o.Context = ctx
	}
}

func WithDebug(b bool) AppOption {
	return func(o *ApplicationConfig) {
		o.Debug = b
	}
}

func WithAudioDir(path string) AppOption {
	return func(o *ApplicationConfig) {
		o.AudioDir = path
	}
}

func WithEmbeddingsDir(path string) AppOption {
	return func(o *ApplicationConfig) {
		o.EmbeddingsDir = path
	}
}

func WithAPIAddress(address string) AppOption {
	return func(o *ApplicationConfig) {
		o.APIAddress = address
	}
}

func WithCorsAllowOrigins(origins string) AppOption {
	return func(o *ApplicationConfig) {
		o.CORSAllowOrigins = origins
	}
}

func WithHuggingFaceToken(token string) AppOption {
	return func(o *ApplicationConfig) {
		o.HuggingFaceToken = token
	}
}

func WithTranscriptionService(baseURL, apiKey string) AppOption {
	return func(o *ApplicationConfig) {
		o.TranscriptionURL = baseURL
		o.TranscriptionKey = apiKey
	}
}

func WithDiarizationURL(url string) AppOption {
	return func(o *ApplicationConfig) {
		o.DiarizationURL = url
	}
}

func WithSummarizationURL(url string) AppOption {
	return func(o *ApplicationConfig) {
		o.SummarizationURL = url
	}
}

func WithSynthesisURL(url string) AppOption {
	return func(o *ApplicationConfig) {
		o.SynthesisURL = url
	}
}
