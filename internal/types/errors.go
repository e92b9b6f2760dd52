package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every decode failure wraps exactly one of these, so callers can
// classify failures with errors.Is regardless of the positional details.
var (
	ErrInvalidMagic    = errors.New("id3: invalid magic")
	ErrTruncatedInput  = errors.New("id3: truncated input")
	ErrInvalidEncoding = errors.New("id3: invalid encoding")
	ErrOversizedFrame  = errors.New("id3: oversized frame")
)

// DecodeError describes where and why decoding stopped.
type DecodeError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Underlying cause, if any (I/O error, bounds error, ...)
	Err error

	Path    string
	What    string
	FrameID string
	Offset  int64
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.What != "" {
		fmt.Fprintf(&b, " while reading %s", e.What)
	}
	if e.FrameID != "" {
		fmt.Fprintf(&b, " (frame %s)", e.FrameID)
	}
	fmt.Fprintf(&b, " at offset %d", e.Offset)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings flag data the decoder kept but could not fully interpret, e.g.:
//   - A frame whose body is compressed or encrypted
//   - An extended header that was not skipped
//   - An unexpected major version
//
// Warnings are collected in Tag.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string `json:"stage"` // "header", "frame"

	// Warning message
	Message string `json:"message"`

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64 `json:"offset,omitempty"`
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
