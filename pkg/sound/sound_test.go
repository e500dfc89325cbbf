package sound

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesToInt16sLE(t *testing.T) {
	// 0x0001, -1, 0x7FFF
	bytes := []byte{0x01, 0x00, 0xFF, 0xFF, 0xFF, 0x7F}
	require.Equal(t, []int16{1, -1, 32767}, BytesToInt16sLE(bytes))
}

func TestBytesToInt16sLEOddLengthPanics(t *testing.T) {
	require.Panics(t, func() { BytesToInt16sLE([]byte{0x01}) })
}

func TestConvertInt16ToInt(t *testing.T) {
	require.Equal(t, []int{-32768, 0, 32767}, ConvertInt16ToInt([]int16{-32768, 0, 32767}))
}

func TestBytesToFloat32sLE(t *testing.T) {
	// 1.0 and -2.0 as little-endian IEEE 754
	bytes := []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x00, 0xC0}
	require.Equal(t, []float32{1.0, -2.0}, BytesToFloat32sLE(bytes))
}
