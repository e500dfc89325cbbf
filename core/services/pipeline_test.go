package services_test

import (
	"context"
	"errors"

	"github.com/mudler/echoscribe/core/backend"
	"github.com/mudler/echoscribe/core/schema"
	. "github.com/mudler/echoscribe/core/services"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeFetcher struct {
	buffer *schema.AudioBuffer
	err    error
}

func (f *fakeFetcher) Fetch(_ context.Context, _, jobID string) (*schema.AudioBuffer, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.buffer, jobID + "_original.wav", nil
}

type fakeDenoiser struct{}

func (d *fakeDenoiser) Denoise(_ context.Context, in *schema.AudioBuffer, _, jobID string) (*schema.AudioBuffer, string, error) {
	return in, jobID + "_cleaned.wav", nil
}

type fakeTranscriber struct {
	segments []schema.TranscriptSegment
	err      error
}

func (t *fakeTranscriber) Transcribe(context.Context, string) ([]schema.TranscriptSegment, error) {
	return t.segments, t.err
}

type fakeDiarizer struct {
	turns []schema.DiarizationTurn
}

func (d *fakeDiarizer) Diarize(context.Context, string) ([]schema.DiarizationTurn, error) {
	return d.turns, nil
}

type fakeSummarizer struct {
	summary string
	err     error
	called  bool
	input   string
}

func (s *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.called = true
	s.input = text
	return s.summary, s.err
}

type fakeSynthesizer struct {
	fileName string
	err      error
	called   bool
}

func (s *fakeSynthesizer) Synthesize(_ context.Context, _ string, _ []float32, jobID string) (string, error) {
	s.called = true
	if s.err != nil {
		return "", s.err
	}
	if s.fileName != "" {
		return s.fileName, nil
	}
	return jobID + "_summary.wav", nil
}

var _ = Describe("Video processing pipeline", func() {
	var (
		fetcher     *fakeFetcher
		denoiser    *fakeDenoiser
		transcriber *fakeTranscriber
		diarizer    *fakeDiarizer
		summarizer  *fakeSummarizer
		synthesizer *fakeSynthesizer
		voice       []float32
	)

	newProcessor := func() *VideoProcessor {
		return NewVideoProcessor(fetcher, denoiser, transcriber, diarizer, summarizer, synthesizer, voice)
	}

	BeforeEach(func() {
		fetcher = &fakeFetcher{buffer: &schema.AudioBuffer{Data: []float32{0.1, 0.2}, SampleRate: 16000}}
		denoiser = &fakeDenoiser{}
		transcriber = &fakeTranscriber{segments: []schema.TranscriptSegment{
			{Start: 0.0, End: 2.0, Text: "hello"},
			{Start: 2.0, End: 4.0, Text: "world"},
		}}
		diarizer = &fakeDiarizer{turns: []schema.DiarizationTurn{
			{Start: 0.0, End: 2.5, Speaker: "SPEAKER_00"},
			{Start: 2.5, End: 5.0, Speaker: "SPEAKER_01"},
		}}
		summarizer = &fakeSummarizer{summary: "two people greet the world"}
		synthesizer = &fakeSynthesizer{}
		voice = []float32{0.5, 0.25}
	})

	It("returns the labeled transcript, summary and narration reference", func() {
		result, err := newProcessor().Process(context.Background(), "https://example.com/watch?v=abc")

		Expect(err).ToNot(HaveOccurred())
		Expect(result.Summary).To(Equal("two people greet the world"))
		Expect(result.SummaryAudioFilename).ToNot(BeNil())
		Expect(*result.SummaryAudioFilename).To(HaveSuffix("_summary.wav"))
		Expect(result.DiarizedTranscript).To(Equal([]schema.LabeledSegment{
			{Speaker: "SPEAKER_00", Text: "hello", Start: 0.0, End: 2.0},
			{Speaker: "SPEAKER_01", Text: "world", Start: 2.0, End: 4.0},
		}))
		Expect(summarizer.input).To(Equal("SPEAKER_00: hello SPEAKER_01: world "))
	})

	Context("when the download fails", func() {
		BeforeEach(func() {
			fetcher.err = &backend.FetchError{Err: errors.New("no audio track")}
		})

		It("propagates the audio preparation error", func() {
			_, err := newProcessor().Process(context.Background(), "https://example.com/broken")

			var fetchErr *backend.FetchError
			Expect(errors.As(err, &fetchErr)).To(BeTrue())
		})
	})

	Context("when the transcript is empty", func() {
		BeforeEach(func() {
			transcriber.segments = nil
		})

		It("skips summarization and synthesis", func() {
			result, err := newProcessor().Process(context.Background(), "https://example.com/silence")

			Expect(err).ToNot(HaveOccurred())
			Expect(summarizer.called).To(BeFalse())
			Expect(synthesizer.called).To(BeFalse())
			Expect(result.Summary).To(BeEmpty())
			Expect(result.SummaryAudioFilename).To(BeNil())
		})
	})

	Context("when the summarizer yields no usable summary", func() {
		BeforeEach(func() {
			summarizer.summary = ""
		})

		It("skips synthesis and still succeeds", func() {
			result, err := newProcessor().Process(context.Background(), "https://example.com/watch?v=abc")

			Expect(err).ToNot(HaveOccurred())
			Expect(summarizer.called).To(BeTrue())
			Expect(synthesizer.called).To(BeFalse())
			Expect(result.Summary).To(BeEmpty())
			Expect(result.SummaryAudioFilename).To(BeNil())
		})
	})

	Context("when synthesis fails", func() {
		BeforeEach(func() {
			synthesizer.err = errors.New("vocoder exploded")
		})

		It("returns the rest of the result with a null audio reference", func() {
			result, err := newProcessor().Process(context.Background(), "https://example.com/watch?v=abc")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Summary).To(Equal("two people greet the world"))
			Expect(result.SummaryAudioFilename).To(BeNil())
			Expect(result.DiarizedTranscript).To(HaveLen(2))
		})
	})

	Context("when transcription fails", func() {
		BeforeEach(func() {
			transcriber.err = errors.New("model unavailable")
		})

		It("propagates the raw error", func() {
			_, err := newProcessor().Process(context.Background(), "https://example.com/watch?v=abc")

			Expect(err).To(MatchError("model unavailable"))
			var fetchErr *backend.FetchError
			Expect(errors.As(err, &fetchErr)).To(BeFalse())
		})
	})
})
