package sound

import (
	"encoding/binary"
	"math"
)

func BytesFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	float := math.Float32frombits(bits)
	return float
}

// BytesToFloat32sLE interprets bytes as a sequence of little-endian float32
// values. The input length must be a multiple of 4.
func BytesToFloat32sLE(bytes []byte) []float32 {
	if len(bytes)%4 != 0 {
		panic("bytesToFloat32sLE: input bytes slice length must be a multiple of 4")
	}

	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = BytesFloat32(bytes[i*4 : i*4+4])
	}
	return floats
}
