package xvector

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/mudler/echoscribe/pkg/sound"
)

var npyMagic = []byte("\x93NUMPY")

// readNPYVector reads a 1-D little-endian float32 NumPy array, which is the
// on-disk format of the x-vector table entries.
func readNPYVector(path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < 10 || string(raw[:6]) != string(npyMagic) {
		return nil, fmt.Errorf("%s is not a npy file", path)
	}

	// Version 1.x header: uint16 little-endian header length at offset 8.
	headerLen := int(binary.LittleEndian.Uint16(raw[8:10]))
	if len(raw) < 10+headerLen {
		return nil, fmt.Errorf("%s: truncated npy header", path)
	}
	header := string(raw[10 : 10+headerLen])

	if !strings.Contains(header, "'descr': '<f4'") {
		return nil, fmt.Errorf("%s: unsupported npy dtype, want little-endian float32, header %q", path, header)
	}
	if !strings.Contains(header, "'fortran_order': False") {
		return nil, fmt.Errorf("%s: fortran-ordered npy arrays are not supported", path)
	}

	data := raw[10+headerLen:]
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%s: npy payload length %d is not a multiple of 4", path, len(data))
	}

	return sound.BytesToFloat32sLE(data), nil
}
