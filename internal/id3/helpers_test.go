package id3

import (
	"bytes"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// tagBuilder assembles ID3v2 tags byte by byte for tests.
type tagBuilder struct {
	frames  bytes.Buffer
	size    *uint32
	major   byte
	flags   byte
	padding int
}

func newTag(major byte) *tagBuilder {
	return &tagBuilder{major: major}
}

// frame appends a raw frame with the given flag bytes.
func (b *tagBuilder) frame(id string, status, format byte, body []byte) *tagBuilder {
	sw := binutil.NewSafeWriter(&b.frames)
	_ = sw.WriteString(id)
	_ = sw.WriteSynchsafe(uint32(len(body)))
	_ = binutil.Write[uint8](sw, status)
	_ = binutil.Write[uint8](sw, format)
	_ = sw.WriteBytes(body)
	return b
}

// text appends a text frame: encoding byte followed by the encoded text.
func (b *tagBuilder) text(id string, enc byte, text []byte) *tagBuilder {
	return b.frame(id, 0, 0, append([]byte{enc}, text...))
}

func (b *tagBuilder) pad(n int) *tagBuilder {
	b.padding = n
	return b
}

func (b *tagBuilder) headerFlags(flags byte) *tagBuilder {
	b.flags = flags
	return b
}

// declare overrides the tag size written into the header.
func (b *tagBuilder) declare(size uint32) *tagBuilder {
	b.size = &size
	return b
}

func (b *tagBuilder) bytes() []byte {
	size := uint32(b.frames.Len() + b.padding)
	if b.size != nil {
		size = *b.size
	}

	var out bytes.Buffer
	sw := binutil.NewSafeWriter(&out)
	_ = sw.WriteString("ID3")
	_ = binutil.Write[uint8](sw, b.major)
	_ = binutil.Write[uint8](sw, 0)
	_ = binutil.Write[uint8](sw, b.flags)
	_ = sw.WriteSynchsafe(size)
	_ = sw.WriteBytes(b.frames.Bytes())
	_ = sw.WriteBytes(make([]byte, b.padding))
	return out.Bytes()
}

func streamOf(data []byte) *binutil.StreamReader {
	return binutil.NewStreamReader(bytes.NewReader(data), "test.mp3")
}
