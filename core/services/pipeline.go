package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/mudler/echoscribe/core/backend"
	"github.com/mudler/echoscribe/core/schema"
)

// The pipeline talks to its stages through narrow contracts; every stage is
// an external pretrained model behind one of these.

type Fetcher interface {
	Fetch(ctx context.Context, url, jobID string) (*schema.AudioBuffer, string, error)
}

type Denoiser interface {
	Denoise(ctx context.Context, in *schema.AudioBuffer, srcPath, jobID string) (*schema.AudioBuffer, string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) ([]schema.TranscriptSegment, error)
}

type Diarizer interface {
	Diarize(ctx context.Context, wavPath string) ([]schema.DiarizationTurn, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, embedding []float32, jobID string) (string, error)
}

// Processor is what the HTTP layer sees of the pipeline.
type Processor interface {
	Process(ctx context.Context, url string) (*schema.ProcessingResult, error)
}

// VideoProcessor runs the stages strictly in sequence for one request.
// All per-request state is local to Process; the stage clients and the
// voice embedding are read-only and shared across requests.
type VideoProcessor struct {
	fetcher     Fetcher
	denoiser    Denoiser
	transcriber Transcriber
	diarizer    Diarizer
	summarizer  Summarizer
	synthesizer Synthesizer

	voiceEmbedding []float32
}

func NewVideoProcessor(
	fetcher Fetcher,
	denoiser Denoiser,
	transcriber Transcriber,
	diarizer Diarizer,
	summarizer Summarizer,
	synthesizer Synthesizer,
	voiceEmbedding []float32,
) *VideoProcessor {
	return &VideoProcessor{
		fetcher:        fetcher,
		denoiser:       denoiser,
		transcriber:    transcriber,
		diarizer:       diarizer,
		summarizer:     summarizer,
		synthesizer:    synthesizer,
		voiceEmbedding: voiceEmbedding,
	}
}

// Process runs the full pipeline for url. Audio preparation failures come
// back as *backend.FetchError; transcription, diarization and summarization
// failures propagate untouched; synthesis failures only null the audio
// reference. Scratch files are kept on success and on failure.
func (p *VideoProcessor) Process(ctx context.Context, url string) (*schema.ProcessingResult, error) {
	jobID := uuid.New().String()
	xlog.Info("processing video", "jobID", jobID, "url", url)

	original, originalPath, err := p.fetcher.Fetch(ctx, url, jobID)
	if err != nil {
		return nil, err
	}
	xlog.Debug("audio downloaded", "jobID", jobID, "samples", len(original.Data), "sampleRate", original.SampleRate)

	_, cleanedPath, err := p.denoiser.Denoise(ctx, original, originalPath, jobID)
	if err != nil {
		return nil, err
	}

	segments, err := p.transcriber.Transcribe(ctx, cleanedPath)
	if err != nil {
		return nil, err
	}
	xlog.Debug("transcription done", "jobID", jobID, "segments", len(segments))

	turns, err := p.diarizer.Diarize(ctx, cleanedPath)
	if err != nil {
		return nil, err
	}
	xlog.Debug("diarization done", "jobID", jobID, "turns", len(turns))

	labeled := backend.Align(segments, turns)
	transcriptText := backend.FlattenTranscript(labeled)

	summary := ""
	if transcriptText != "" {
		summary, err = p.summarizer.Summarize(ctx, transcriptText)
		if err != nil {
			return nil, err
		}
	}

	var summaryAudioFilename *string
	if summary != "" {
		fileName, err := p.synthesizer.Synthesize(ctx, summary, p.voiceEmbedding, jobID)
		if err != nil {
			// Narration is best-effort: the transcript and summary are
			// still worth returning.
			xlog.Error("speech synthesis failed", "jobID", jobID, "error", err)
		} else {
			summaryAudioFilename = &fileName
		}
	}

	xlog.Info("processing completed", "jobID", jobID, "segments", len(labeled), "narrated", summaryAudioFilename != nil)

	return &schema.ProcessingResult{
		Summary:              summary,
		SummaryAudioFilename: summaryAudioFilename,
		DiarizedTranscript:   labeled,
	}, nil
}
