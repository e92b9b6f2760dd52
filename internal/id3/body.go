package id3

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/types"
)

var (
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// DecodeFrame produces a typed frame from its header and exactly h.Size body bytes.
//
// Identifiers starting with 'T' are text frames unless the body is
// compressed or encrypted; those, and every other identifier, stay opaque.
func DecodeFrame(h types.FrameHeader, body []byte) (types.Frame, error) {
	if h.Flags.NeedsTransform() {
		return types.Frame{
			Header: h,
			Body:   types.Opaque{Data: body, NeedsTransform: true},
		}, nil
	}

	if !registry.IsText(h.ID) {
		return types.Frame{Header: h, Body: types.Opaque{Data: body}}, nil
	}

	text, err := decodeTextFrame(body)
	if err != nil {
		return types.Frame{}, &types.DecodeError{
			Kind:    types.ErrInvalidEncoding,
			What:    "text frame body",
			FrameID: h.ID,
			Err:     err,
		}
	}
	return types.Frame{Header: h, Body: text}, nil
}

// decodeTextFrame parses [encoding][text...].
func decodeTextFrame(body []byte) (types.Text, error) {
	if len(body) == 0 {
		return types.Text{Encoding: types.EncodingISO88591}, nil
	}

	enc := types.TextEncoding(body[0])
	text, err := DecodeText(body[1:], enc)
	if err != nil {
		return types.Text{}, err
	}
	return types.Text{Value: text, Encoding: enc}, nil
}

// DecodeText decodes data in the given ID3v2 text encoding. Trailing
// terminators are removed; inner terminators separating multiple values are kept.
func DecodeText(data []byte, enc types.TextEncoding) (string, error) {
	var (
		text string
		err  error
	)

	switch enc {
	case types.EncodingISO88591:
		text, err = decodeWith(charmap.ISO8859_1, data)

	case types.EncodingUTF16, types.EncodingUTF16BE:
		if len(data)%2 != 0 {
			// Some writers end UTF-16 text with a single NUL.
			if data[len(data)-1] != 0 {
				return "", fmt.Errorf("%s text has odd length %d", enc, len(data))
			}
			data = data[:len(data)-1]
		}
		text, err = decodeUTF16(data, enc)

	case types.EncodingUTF8:
		if !utf8.Valid(data) {
			return "", errors.New("text is not valid UTF-8")
		}
		text = string(data)

	default:
		return "", fmt.Errorf("unknown text encoding %d", uint8(enc))
	}

	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\x00"), nil
}

// decodeUTF16 decodes NUL-separated UTF-16 values one at a time. With
// EncodingUTF16 each value may start with its own BOM; a value without one
// keeps the byte order of the value before it, big-endian for the first.
func decodeUTF16(data []byte, enc types.TextEncoding) (string, error) {
	order := utf16BE
	values := splitTerminated(data, enc.TerminatorSize())
	out := make([]string, 0, len(values))

	for _, v := range values {
		if enc == types.EncodingUTF16 && len(v) >= 2 {
			switch {
			case v[0] == 0xFF && v[1] == 0xFE:
				order, v = utf16LE, v[2:]
			case v[0] == 0xFE && v[1] == 0xFF:
				order, v = utf16BE, v[2:]
			}
		}
		if enc == types.EncodingUTF16BE {
			order = utf16BE
		}

		text, err := decodeWith(order, v)
		if err != nil {
			return "", err
		}
		out = append(out, text)
	}

	return strings.Join(out, "\x00"), nil
}

// splitTerminated splits data at terminators of width size that start on a
// size-aligned offset.
func splitTerminated(data []byte, size int) [][]byte {
	var values [][]byte
	start := 0
	for i := 0; i+size <= len(data); i += size {
		if isZero(data[i : i+size]) {
			values = append(values, data[start:i])
			start = i + size
		}
	}
	return append(values, data[start:])
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func decodeWith(e encoding.Encoding, data []byte) (string, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
