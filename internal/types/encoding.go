package types

import "fmt"

// TextEncoding is the indicator byte that opens every text-information frame.
type TextEncoding uint8

const (
	// EncodingISO88591 is ISO-8859-1 (Latin-1), one byte per character.
	EncodingISO88591 TextEncoding = iota
	// EncodingUTF16 is UTF-16 with a byte order mark.
	EncodingUTF16
	// EncodingUTF16BE is UTF-16 big-endian without a BOM (ID3v2.4).
	EncodingUTF16BE
	// EncodingUTF8 is UTF-8 (ID3v2.4).
	EncodingUTF8
)

// Valid reports whether e is one of the four defined encodings.
func (e TextEncoding) Valid() bool {
	return e <= EncodingUTF8
}

// TerminatorSize returns the width in bytes of a NUL terminator in this encoding.
func (e TextEncoding) TerminatorSize() int {
	switch e {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

func (e TextEncoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("TextEncoding(%d)", uint8(e))
	}
}

// MarshalText renders the encoding name, so JSON output reads "UTF-8" rather than 3.
func (e TextEncoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
