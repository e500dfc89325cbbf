package schema

// AudioBuffer is a mono waveform with its sample rate. Buffers produced by
// the fetcher are never empty; the denoiser preserves length and rate
// exactly.
type AudioBuffer struct {
	Data       []float32
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b *AudioBuffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Data)) / float64(b.SampleRate)
}
