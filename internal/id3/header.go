// Package id3 decodes ID3v2 tags: the tag header, frame headers, frame
// bodies, and the sequential walk that ties them together.
//
// Every stage consumes bytes from a binary.Source strictly in order; nothing
// is ever re-read, so a tag can be decoded from a pipe or a network body.
package id3

import (
	"bytes"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

var magic = []byte("ID3")

// DecodeTagHeader decodes the 10-byte tag header.
func DecodeTagHeader(b []byte) (types.TagHeader, error) {
	if len(b) < types.HeaderSize {
		return types.TagHeader{}, &types.DecodeError{
			Kind: types.ErrTruncatedInput,
			What: "tag header",
		}
	}

	if !bytes.Equal(b[0:3], magic) {
		return types.TagHeader{}, &types.DecodeError{
			Kind: types.ErrInvalidMagic,
			What: "tag header",
		}
	}

	return types.TagHeader{
		Major:    b[3],
		Revision: b[4],
		Flags: types.HeaderFlags{
			Unsynchronisation: b[5]&0x80 != 0,
			ExtendedHeader:    b[5]&0x40 != 0,
			Experimental:      b[5]&0x20 != 0,
		},
		Size: binutil.Synchsafe(b[6:10]),
	}, nil
}

// ReadTagHeader reads exactly 10 bytes from src and decodes them.
func ReadTagHeader(src binutil.Source) (types.TagHeader, error) {
	b, err := src.ReadFull(types.HeaderSize, "tag header")
	if err != nil {
		return types.TagHeader{}, err
	}
	return DecodeTagHeader(b)
}
