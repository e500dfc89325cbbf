package media

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
)

// DecodeWav reads a WAV file fully into memory.
func DecodeWav(path string) (*audio.IntBuffer, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	d := wav.NewDecoder(fh)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid wav file", path)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return buf, nil
}

// EncodeWav writes buf to path as a 16-bit PCM WAV file.
func EncodeWav(path string, buf *audio.IntBuffer) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	enc := wav.NewEncoder(fh, buf.Format.SampleRate, 16, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return enc.Close()
}
