package application

import (
	"github.com/mudler/echoscribe/core/config"
	"github.com/mudler/echoscribe/core/services"
)

type Application struct {
	applicationConfig *config.ApplicationConfig
	processor         *services.VideoProcessor
	voiceEmbedding    []float32
}

func newApplication(appConfig *config.ApplicationConfig) *Application {
	return &Application{
		applicationConfig: appConfig,
	}
}

func (a *Application) ApplicationConfig() *config.ApplicationConfig {
	return a.applicationConfig
}

func (a *Application) Processor() *services.VideoProcessor {
	return a.processor
}

// VoiceEmbedding is the fixed reference x-vector every narration uses.
// Loaded once at startup, never mutated.
func (a *Application) VoiceEmbedding() []float32 {
	return a.voiceEmbedding
}
