package schema

// ProcessVideoRequest is the body of POST /process-video/.
type ProcessVideoRequest struct {
	URL string `json:"url"`
}

// LabeledSegment is a transcript segment attributed to a speaker. Speaker is
// either a diarization label (e.g. SPEAKER_00) or the sentinel "UNKNOWN".
type LabeledSegment struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// ProcessingResult is assembled once per request and is immutable afterwards.
// SummaryAudioFilename is nil when narration was skipped or failed.
type ProcessingResult struct {
	Summary              string
	SummaryAudioFilename *string
	DiarizedTranscript   []LabeledSegment
}

type ProcessVideoResponse struct {
	Message              string           `json:"message"`
	Summary              string           `json:"summary"`
	SummaryAudioFilename *string          `json:"summary_audio_filename"`
	DiarizedTranscript   []LabeledSegment `json:"diarized_transcript"`
}

// ErrorResponse mirrors the wire format the local web client expects.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
