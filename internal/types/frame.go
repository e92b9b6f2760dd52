package types

import (
	"encoding/json"
	"strings"

	"github.com/simonhull/id3meta/internal/registry"
)

// FrameFlags are the two ID3v2 frame flag bytes.
//
// The first byte describes status: bits 7 and 6 are "discard" markers, so
// PreserveOnTagAlter and PreserveOnFileAlter are true when the bit is CLEAR.
// ReadOnly and the format flags of the second byte are true when set.
type FrameFlags struct {
	PreserveOnTagAlter  bool `json:"preserve_on_tag_alter"`
	PreserveOnFileAlter bool `json:"preserve_on_file_alter"`
	ReadOnly            bool `json:"read_only"`
	Compressed          bool `json:"compressed"`
	Encrypted           bool `json:"encrypted"`
	Grouped             bool `json:"grouped"`
}

// NeedsTransform reports whether the body must be decompressed or decrypted
// before its contents mean anything.
func (f FrameFlags) NeedsTransform() bool {
	return f.Compressed || f.Encrypted
}

// Bits re-encodes the flags into their on-disk status and format bytes.
func (f FrameFlags) Bits() (status, format byte) {
	if !f.PreserveOnTagAlter {
		status |= 0x80
	}
	if !f.PreserveOnFileAlter {
		status |= 0x40
	}
	if f.ReadOnly {
		status |= 0x20
	}
	if f.Compressed {
		format |= 0x80
	}
	if f.Encrypted {
		format |= 0x40
	}
	if f.Grouped {
		format |= 0x20
	}
	return status, format
}

// FrameHeader is the fixed 10-byte header preceding every frame body.
type FrameHeader struct {
	ID    string     `json:"id"`
	Size  uint32     `json:"size"` // Body size, excluding this header
	Flags FrameFlags `json:"flags"`
}

// FrameKind distinguishes the two body shapes.
type FrameKind int

const (
	// KindOpaque frames keep their body bytes as-is.
	KindOpaque FrameKind = iota
	// KindText frames carry decoded text.
	KindText
)

func (k FrameKind) String() string {
	if k == KindText {
		return "text"
	}
	return "opaque"
}

// Body is a decoded frame body. It is a closed set: Text and Opaque are the
// only implementations.
type Body interface {
	Kind() FrameKind
	sealed()
}

// Text is the body of a text-information frame with the encoding byte stripped
// and trailing terminators removed.
type Text struct {
	Value    string
	Encoding TextEncoding
}

// Kind implements Body.
func (Text) Kind() FrameKind { return KindText }
func (Text) sealed()         {}

// Opaque is an uninterpreted frame body.
type Opaque struct {
	Data []byte

	// NeedsTransform is set when the body was left opaque because it is
	// compressed or encrypted; the caller has to transform it first.
	NeedsTransform bool
}

// Kind implements Body.
func (Opaque) Kind() FrameKind { return KindOpaque }
func (Opaque) sealed()         {}

// Frame is one decoded ID3v2 frame.
type Frame struct {
	Body   Body
	Header FrameHeader
}

// ID returns the 4-character frame identifier.
func (f Frame) ID() string {
	return f.Header.ID
}

// Kind returns the body shape.
func (f Frame) Kind() FrameKind {
	if f.Body == nil {
		return KindOpaque
	}
	return f.Body.Kind()
}

// Text returns the decoded text of a text frame.
func (f Frame) Text() (string, bool) {
	t, ok := f.Body.(Text)
	return t.Value, ok
}

// Values splits a text frame into its NUL-separated values.
//
// ID3v2.4 stores multiple values (several artists, TXXX description and value)
// in one frame separated by terminators. Returns nil for non-text frames.
func (f Frame) Values() []string {
	text, ok := f.Text()
	if !ok {
		return nil
	}
	return strings.Split(text, "\x00")
}

// Data returns the raw body of an opaque frame, or nil for text frames.
func (f Frame) Data() []byte {
	if o, ok := f.Body.(Opaque); ok {
		return o.Data
	}
	return nil
}

// NeedsTransform reports whether the body still has to be decompressed or
// decrypted by the caller.
func (f Frame) NeedsTransform() bool {
	o, ok := f.Body.(Opaque)
	return ok && o.NeedsTransform
}

// Description returns the declared meaning of the frame identifier, or "".
func (f Frame) Description() string {
	return registry.Describe(f.Header.ID)
}

type frameJSON struct {
	FrameHeader
	Kind           string        `json:"kind"`
	Description    string        `json:"description,omitempty"`
	Encoding       *TextEncoding `json:"encoding,omitempty"`
	Text           *string       `json:"text,omitempty"`
	Data           []byte        `json:"data,omitempty"`
	NeedsTransform bool          `json:"needs_transform,omitempty"`
}

// MarshalJSON flattens the header and tags the body with its kind.
func (f Frame) MarshalJSON() ([]byte, error) {
	out := frameJSON{
		FrameHeader: f.Header,
		Kind:        f.Kind().String(),
		Description: f.Description(),
	}
	switch b := f.Body.(type) {
	case Text:
		out.Encoding = &b.Encoding
		out.Text = &b.Value
	case Opaque:
		out.Data = b.Data
		out.NeedsTransform = b.NeedsTransform
	}
	return json.Marshal(out)
}
