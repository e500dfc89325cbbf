package schema

// TranscriptSegment is a time-stamped piece of recognized speech, with
// 0 <= Start < End in seconds. Segments are ordered by start time; gaps
// between segments are allowed.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// DiarizationTurn is a time interval attributed to one speaker, with
// Start <= End in seconds. Turns of different speakers may overlap, and not
// every moment of audio is necessarily covered by a turn.
type DiarizationTurn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}
