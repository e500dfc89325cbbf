package backend

import (
	"strings"

	"github.com/mudler/echoscribe/core/schema"
)

// UnknownSpeaker is assigned to transcript segments whose midpoint falls
// inside no diarization turn.
const UnknownSpeaker = "UNKNOWN"

// Align attributes each transcript segment to a speaker. For a segment, the
// winning turn is the first one, in the order the diarizer emitted them,
// whose closed interval [Start, End] contains the segment's temporal
// midpoint. First match wins: when turns overlap, emission order decides,
// not overlap size or center distance. Every input segment yields exactly
// one labeled segment, in input order, with times unchanged.
func Align(segments []schema.TranscriptSegment, turns []schema.DiarizationTurn) []schema.LabeledSegment {
	labeled := make([]schema.LabeledSegment, 0, len(segments))
	for _, segment := range segments {
		center := segment.Start + (segment.End-segment.Start)/2
		speaker := UnknownSpeaker
		for _, turn := range turns {
			if turn.Start <= center && center <= turn.End {
				speaker = turn.Speaker
				break
			}
		}
		labeled = append(labeled, schema.LabeledSegment{
			Speaker: speaker,
			Text:    segment.Text,
			Start:   segment.Start,
			End:     segment.End,
		})
	}
	return labeled
}

// FlattenTranscript concatenates labeled segments into the plain-text blob
// fed to the summarizer, one "{speaker}: {text} " entry per segment in
// segment order.
func FlattenTranscript(segments []schema.LabeledSegment) string {
	var sb strings.Builder
	for _, segment := range segments {
		sb.WriteString(segment.Speaker)
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSpace(segment.Text))
		sb.WriteString(" ")
	}
	return sb.String()
}
