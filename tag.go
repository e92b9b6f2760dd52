package id3meta

import (
	"github.com/simonhull/id3meta/internal/id3"
	"github.com/simonhull/id3meta/internal/types"
)

// Data model re-exported from internal/types.
type (
	Tag          = types.Tag
	TagHeader    = types.TagHeader
	HeaderFlags  = types.HeaderFlags
	Frame        = types.Frame
	FrameHeader  = types.FrameHeader
	FrameFlags   = types.FrameFlags
	FrameKind    = types.FrameKind
	Body         = types.Body
	Text         = types.Text
	Opaque       = types.Opaque
	TextEncoding = types.TextEncoding
)

// Frame kinds.
const (
	KindOpaque = types.KindOpaque
	KindText   = types.KindText
)

// Text encodings.
const (
	EncodingISO88591 = types.EncodingISO88591
	EncodingUTF16    = types.EncodingUTF16
	EncodingUTF16BE  = types.EncodingUTF16BE
	EncodingUTF8     = types.EncodingUTF8
)

// State is the state of a parse: start, reading-header, reading-body, done or failed.
type State = id3.State

// Parse states.
const (
	StateStart         = id3.StateStart
	StateReadingHeader = id3.StateReadingHeader
	StateReadingBody   = id3.StateReadingBody
	StateDone          = id3.StateDone
	StateFailed        = id3.StateFailed
)
