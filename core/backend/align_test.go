package backend_test

import (
	. "github.com/mudler/echoscribe/core/backend"
	"github.com/mudler/echoscribe/core/schema"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Speaker alignment", func() {
	Context("attributing segments to turns", func() {
		It("labels each segment with the turn containing its midpoint", func() {
			segments := []schema.TranscriptSegment{
				{Start: 0.0, End: 2.0, Text: "hello"},
				{Start: 2.0, End: 4.0, Text: "world"},
			}
			turns := []schema.DiarizationTurn{
				{Start: 0.0, End: 2.5, Speaker: "SPEAKER_00"},
				{Start: 2.5, End: 5.0, Speaker: "SPEAKER_01"},
			}

			labeled := Align(segments, turns)

			Expect(labeled).To(Equal([]schema.LabeledSegment{
				{Speaker: "SPEAKER_00", Text: "hello", Start: 0.0, End: 2.0},
				{Speaker: "SPEAKER_01", Text: "world", Start: 2.0, End: 4.0},
			}))
		})

		It("treats turn boundaries as inclusive on both ends", func() {
			segments := []schema.TranscriptSegment{
				{Start: 1.0, End: 3.0, Text: "edge"},
			}
			turns := []schema.DiarizationTurn{
				{Start: 2.0, End: 2.0, Speaker: "SPEAKER_03"},
			}

			labeled := Align(segments, turns)

			Expect(labeled[0].Speaker).To(Equal("SPEAKER_03"))
		})

		It("labels segments matched by no turn as UNKNOWN", func() {
			segments := []schema.TranscriptSegment{
				{Start: 10.0, End: 12.0, Text: "orphan"},
			}
			turns := []schema.DiarizationTurn{
				{Start: 0.0, End: 5.0, Speaker: "SPEAKER_00"},
			}

			labeled := Align(segments, turns)

			Expect(labeled[0].Speaker).To(Equal(UnknownSpeaker))
		})

		It("keeps every segment, in order, with times unchanged", func() {
			segments := []schema.TranscriptSegment{
				{Start: 0.0, End: 1.0, Text: "a"},
				{Start: 1.5, End: 2.0, Text: "b"},
				{Start: 7.0, End: 9.0, Text: "c"},
			}
			turns := []schema.DiarizationTurn{
				{Start: 0.0, End: 2.0, Speaker: "SPEAKER_00"},
			}

			labeled := Align(segments, turns)

			Expect(labeled).To(HaveLen(3))
			for i := range segments {
				Expect(labeled[i].Start).To(Equal(segments[i].Start))
				Expect(labeled[i].End).To(Equal(segments[i].End))
				Expect(labeled[i].Text).To(Equal(segments[i].Text))
			}
		})
	})

	Context("overlapping turns", func() {
		segments := []schema.TranscriptSegment{
			{Start: 0.0, End: 2.0, Text: "contested"},
		}
		overlapping := []schema.DiarizationTurn{
			{Start: 0.0, End: 3.0, Speaker: "SPEAKER_00"},
			{Start: 0.5, End: 2.5, Speaker: "SPEAKER_01"},
		}

		It("resolves ties to the first turn in emission order", func() {
			labeled := Align(segments, overlapping)
			Expect(labeled[0].Speaker).To(Equal("SPEAKER_00"))
		})

		It("changes attribution when the diarizer emission order changes", func() {
			reversed := []schema.DiarizationTurn{overlapping[1], overlapping[0]}
			labeled := Align(segments, reversed)
			Expect(labeled[0].Speaker).To(Equal("SPEAKER_01"))
		})
	})

	Context("flattening for summarization", func() {
		It("concatenates speaker-prefixed trimmed text in segment order", func() {
			labeled := []schema.LabeledSegment{
				{Speaker: "SPEAKER_00", Text: " hello there ", Start: 0, End: 2},
				{Speaker: "UNKNOWN", Text: "who said that", Start: 2, End: 4},
			}

			Expect(FlattenTranscript(labeled)).To(Equal("SPEAKER_00: hello there UNKNOWN: who said that "))
		})

		It("returns an empty blob for an empty transcript", func() {
			Expect(FlattenTranscript(nil)).To(BeEmpty())
		})
	})
})
