package id3

import (
	"fmt"
	"unicode/utf8"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// DecodeFrameHeader decodes a 10-byte frame header.
//
// ok is false, with a nil error, when the first byte is zero: that is padding
// and there are no more frames.
//
// The size is synchsafe. The status byte's two "discard" bits are inverted
// into Preserve* flags; do not flip them back.
func DecodeFrameHeader(b []byte) (h types.FrameHeader, ok bool, err error) {
	if len(b) < types.HeaderSize {
		return types.FrameHeader{}, false, &types.DecodeError{
			Kind: types.ErrTruncatedInput,
			What: "frame header",
		}
	}

	if b[0] == 0x00 {
		return types.FrameHeader{}, false, nil
	}

	id := b[0:4]
	if !utf8.Valid(id) {
		return types.FrameHeader{}, false, &types.DecodeError{
			Kind: types.ErrInvalidEncoding,
			What: "frame header",
			Err:  fmt.Errorf("frame identifier % x is not valid text", id),
		}
	}

	status, format := b[8], b[9]
	return types.FrameHeader{
		ID:   string(id),
		Size: binutil.Synchsafe(b[4:8]),
		Flags: types.FrameFlags{
			PreserveOnTagAlter:  status&0x80 == 0,
			PreserveOnFileAlter: status&0x40 == 0,
			ReadOnly:            status&0x20 != 0,
			Compressed:          format&0x80 != 0,
			Encrypted:           format&0x40 != 0,
			Grouped:             format&0x20 != 0,
		},
	}, true, nil
}
