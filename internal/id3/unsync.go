package id3

import "bytes"

// Resynchronise reverses the unsynchronisation scheme: every 0xFF 0x00 pair
// becomes 0xFF. The input is returned unchanged when it holds no such pair.
func Resynchronise(b []byte) []byte {
	i := bytes.Index(b, []byte{0xFF, 0x00})
	if i < 0 {
		return b
	}

	out := make([]byte, 0, len(b))
	out = append(out, b[:i+1]...)
	for j := i + 2; j < len(b); j++ {
		out = append(out, b[j])
		if b[j] == 0xFF && j+1 < len(b) && b[j+1] == 0x00 {
			j++
		}
	}
	return out
}
