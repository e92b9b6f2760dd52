package id3

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// State is a frame walker state.
type State int

const (
	// StateStart is the state before the first frame header is read.
	StateStart State = iota
	// StateReadingHeader expects a frame header (or padding) next.
	StateReadingHeader
	// StateReadingBody expects the body of the pending frame header next.
	StateReadingBody
	// StateDone is terminal: the tag ended cleanly.
	StateDone
	// StateFailed is terminal: decoding stopped on an error.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateReadingHeader:
		return "reading-header"
	case StateReadingBody:
		return "reading-body"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further steps are possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// WalkOptions tune the frame walk.
type WalkOptions struct {
	// Resync collapses 0xFF 0x00 pairs in frame bodies when the tag header
	// has the unsynchronisation flag set.
	Resync bool

	// ConsumePadding reads past the padding after the last frame so the
	// source is left at the first byte after the tag.
	ConsumePadding bool
}

// Walker discovers frames one at a time, starting right after the tag header.
//
// Each frame's size must be decoded before the next frame's offset is known,
// so a walk is strictly sequential. A Walker is not safe for concurrent use;
// independent Walkers share nothing.
type Walker struct {
	src     binutil.Source
	tag     *types.Tag
	err     error
	pending types.FrameHeader
	opts    WalkOptions

	// offset is relative to the start of the tag header.
	offset    int64
	remaining uint32
	state     State
}

// NewWalker creates a walker for the frames that follow header. src must be
// positioned right after the 10 header bytes.
func NewWalker(src binutil.Source, header types.TagHeader, opts WalkOptions) *Walker {
	return &Walker{
		src:       src,
		tag:       types.NewTag(header),
		opts:      opts,
		offset:    types.HeaderSize,
		remaining: header.Size,
		state:     StateStart,
	}
}

// Walk runs the walker to a terminal state.
//
// On failure the returned tag still holds every frame decoded before the
// error. Calling Walk again returns the same result.
func (w *Walker) Walk() (*types.Tag, error) {
	for !w.state.Terminal() {
		w.step()
	}
	return w.tag, w.err
}

// State returns the current state.
func (w *Walker) State() State { return w.state }

// Remaining returns the number of declared tag bytes not yet consumed.
func (w *Walker) Remaining() uint32 { return w.remaining }

// Offset returns the cursor position relative to the start of the tag.
func (w *Walker) Offset() int64 { return w.offset }

// Err returns the error that moved the walker to StateFailed, if any.
func (w *Walker) Err() error { return w.err }

// Tag returns the tag being built.
func (w *Walker) Tag() *types.Tag { return w.tag }

func (w *Walker) step() {
	switch w.state {
	case StateStart:
		w.state = StateReadingHeader
		if w.remaining == 0 {
			w.state = StateDone
		}
	case StateReadingHeader:
		w.readHeader()
	case StateReadingBody:
		w.readBody()
	}
}

func (w *Walker) readHeader() {
	if w.remaining < types.HeaderSize {
		w.readShortTail()
		return
	}

	b, err := w.src.ReadFull(types.HeaderSize, "frame header")
	if err != nil {
		w.fail(err, "")
		return
	}

	h, ok, err := DecodeFrameHeader(b)
	if err != nil {
		w.fail(err, "")
		return
	}

	if !ok {
		w.tag.Padding = w.remaining
		w.offset += types.HeaderSize
		w.remaining -= types.HeaderSize
		w.finishPadding()
		return
	}

	if h.Size > w.remaining-types.HeaderSize {
		w.fail(&types.DecodeError{
			Kind:    types.ErrOversizedFrame,
			What:    "frame header",
			FrameID: h.ID,
			Err: fmt.Errorf("frame declares %d bytes but only %d remain in the tag",
				h.Size, w.remaining-types.HeaderSize),
		}, h.ID)
		return
	}

	w.pending = h
	w.state = StateReadingBody
}

// readShortTail handles fewer than 10 declared bytes left: too small for a
// frame header, so they must be padding.
func (w *Walker) readShortTail() {
	n := w.remaining
	b, err := w.src.ReadFull(int(n), "padding")
	if err != nil {
		w.fail(err, "")
		return
	}

	if b[0] != 0x00 {
		w.fail(&types.DecodeError{
			Kind: types.ErrOversizedFrame,
			What: "frame header",
			Err:  fmt.Errorf("%d bytes left in the tag, a frame header needs %d", n, types.HeaderSize),
		}, "")
		return
	}

	w.tag.Padding = n
	w.offset += int64(n)
	w.remaining = 0
	w.state = StateDone
}

// finishPadding ends the walk after a padding marker.
func (w *Walker) finishPadding() {
	if w.opts.ConsumePadding && w.remaining > 0 {
		if err := discard(w.src, int64(w.remaining)); err != nil {
			w.fail(err, "")
			return
		}
		w.offset += int64(w.remaining)
		w.remaining = 0
	}
	w.state = StateDone
}

func (w *Walker) readBody() {
	h := w.pending
	body, err := w.src.ReadFull(int(h.Size), "frame body")
	if err != nil {
		w.fail(err, h.ID)
		return
	}

	if w.opts.Resync && w.tag.Header.Flags.Unsynchronisation {
		body = Resynchronise(body)
	}

	frame, err := DecodeFrame(h, body)
	if err != nil {
		w.fail(err, h.ID)
		return
	}

	if frame.NeedsTransform() {
		w.tag.Warn("frame", w.offset, "frame %s is compressed or encrypted; body kept opaque", h.ID)
	}

	w.tag.Append(frame)
	w.offset += types.HeaderSize + int64(h.Size)
	w.remaining -= types.HeaderSize + h.Size

	w.state = StateReadingHeader
	if w.remaining == 0 {
		w.state = StateDone
	}
}

// fail moves the walker to StateFailed, stamping the error with the frame
// position when the error came from a stage that does not know it.
func (w *Walker) fail(err error, frameID string) {
	var de *types.DecodeError
	if errors.As(err, &de) {
		if de.Offset == 0 {
			de.Offset = w.offset
		}
		if de.FrameID == "" {
			de.FrameID = frameID
		}
	}
	w.err = err
	w.state = StateFailed
}

func discard(src binutil.Source, n int64) error {
	if d, ok := src.(binutil.Discarder); ok {
		return d.Discard(n, "padding")
	}
	_, err := src.ReadFull(int(n), "padding")
	return err
}
