package binary

// Synchsafe decodes a 4-byte synchsafe integer.
//
// ID3v2 size fields use 7 bits per byte; bit 7 of every byte is ignored so the
// value can never contain a 0xFF byte followed by a byte with the high bits set.
// Returns 0 unless b is exactly 4 bytes long.
func Synchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// PutSynchsafe encodes v into b as a synchsafe integer.
// b must be at least 4 bytes; bits of v above bit 27 are dropped.
func PutSynchsafe(b []byte, v uint32) {
	_ = b[3] // bounds check hint
	b[0] = byte(v>>21) & 0x7F
	b[1] = byte(v>>14) & 0x7F
	b[2] = byte(v>>7) & 0x7F
	b[3] = byte(v) & 0x7F
}
