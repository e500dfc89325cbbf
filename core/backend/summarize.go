package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mudler/echoscribe/core/config"
)

// Summarizer produces an abstractive summary of the speaker-labeled
// transcript through a hosted summarization model.
type Summarizer struct {
	client *inferenceClient
}

func NewSummarizer(appConfig *config.ApplicationConfig) *Summarizer {
	return &Summarizer{client: newInferenceClient(appConfig.SummarizationURL, appConfig.HuggingFaceToken)}
}

type summarizeParameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
}

type summarizeAnswer struct {
	SummaryText string `json:"summary_text"`
}

// Summarize condenses text into a summary bounded to the configured token
// range. An answer with no usable summary yields "" without error.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(summarizeRequest{
		Inputs: text,
		Parameters: summarizeParameters{
			MinLength: config.SummaryMinTokens,
			MaxLength: config.SummaryMaxTokens,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", err
	}

	payload, err := s.client.postJSON(ctx, body)
	if err != nil {
		return "", fmt.Errorf("summarization failed: %w", err)
	}

	var answers []summarizeAnswer
	if err := json.Unmarshal(payload, &answers); err != nil {
		return "", fmt.Errorf("summarization returned an unexpected payload: %w", err)
	}
	if len(answers) == 0 {
		return "", nil
	}
	return answers[0].SummaryText, nil
}
