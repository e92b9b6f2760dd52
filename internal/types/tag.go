// Package types provides the data model for decoded ID3v2 tags.
//
// This package defines TagHeader, FrameHeader, Frame and Tag, plus the error
// kinds shared by every decoding stage.
package types

import (
	"fmt"
	"iter"
)

// HeaderSize is the size of the tag header and of every frame header.
const HeaderSize = 10

// HeaderFlags are the flag bits of the tag header's sixth byte.
type HeaderFlags struct {
	Unsynchronisation bool `json:"unsynchronisation"`
	ExtendedHeader    bool `json:"extended_header"`
	Experimental      bool `json:"experimental"`
}

// TagHeader is the fixed 10-byte header that opens an ID3v2 tag.
type TagHeader struct {
	Flags    HeaderFlags `json:"flags"`
	Size     uint32      `json:"size"`     // Bytes following the header, synchsafe-decoded
	Major    uint8       `json:"major"`    // 3 for ID3v2.3, 4 for ID3v2.4
	Revision uint8       `json:"revision"` // Almost always 0
}

// Version returns the version in the conventional "2.major.revision" form.
func (h TagHeader) Version() string {
	return fmt.Sprintf("2.%d.%d", h.Major, h.Revision)
}

// TotalSize returns the size of the whole tag including its header. The
// audio payload starts at this offset.
func (h TagHeader) TotalSize() int64 {
	return int64(h.Size) + HeaderSize
}

// Tag is a decoded ID3v2 tag: its header plus frames in file order.
//
// A Tag is built by the frame walker and must be treated as read-only once
// returned. After a failed walk it holds every frame decoded before the
// failure.
type Tag struct {
	Frames   []Frame   `json:"frames"`
	Warnings []Warning `json:"warnings,omitempty"`
	Header   TagHeader `json:"header"`

	// Padding is the number of declared tag bytes left after the last frame
	// when the walk ended at a padding marker.
	Padding uint32 `json:"padding"`
}

// NewTag creates an empty tag for the given header.
func NewTag(h TagHeader) *Tag {
	return &Tag{Header: h}
}

// Len returns the number of frames.
func (t *Tag) Len() int {
	return len(t.Frames)
}

// Frame returns the first frame with the given identifier.
func (t *Tag) Frame(id string) (Frame, bool) {
	for _, f := range t.Frames {
		if f.Header.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}

// FramesByID returns every frame with the given identifier, in file order.
func (t *Tag) FramesByID(id string) []Frame {
	var out []Frame
	for _, f := range t.Frames {
		if f.Header.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// Text returns the text of the first text frame with the given identifier,
// or "" if there is none.
func (t *Tag) Text(id string) string {
	for _, f := range t.Frames {
		if f.Header.ID != id {
			continue
		}
		if text, ok := f.Text(); ok {
			return text
		}
	}
	return ""
}

// Title returns the TIT2 text.
func (t *Tag) Title() string { return t.Text("TIT2") }

// Artist returns the TPE1 text.
func (t *Tag) Artist() string { return t.Text("TPE1") }

// Album returns the TALB text.
func (t *Tag) Album() string { return t.Text("TALB") }

// All returns an iterator over the frames with their position.
//
// Example:
//
//	for i, frame := range tag.All() {
//		fmt.Printf("%d %s\n", i, frame.ID())
//	}
func (t *Tag) All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for i, f := range t.Frames {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Filter returns an iterator over frames matching a predicate.
//
// Example:
//
//	// Every frame the caller must decompress or decrypt
//	for frame := range tag.Filter(types.Frame.NeedsTransform) {
//		fmt.Println(frame.ID())
//	}
func (t *Tag) Filter(predicate func(Frame) bool) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for _, f := range t.Frames {
			if predicate(f) {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// Append adds a frame. Only the frame walker calls this.
func (t *Tag) Append(f Frame) {
	t.Frames = append(t.Frames, f)
}

// Warn records a non-fatal issue.
func (t *Tag) Warn(stage string, offset int64, format string, args ...any) {
	t.Warnings = append(t.Warnings, Warning{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	})
}
