package id3

import (
	"fmt"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// Options configure a Decoder.
type Options struct {
	WalkOptions

	// MaxTagSize rejects tags declaring more bytes than this before any
	// frame is read. Zero means no limit.
	MaxTagSize uint32
}

// Decoder reads one tag (header and frames) from a source.
type Decoder struct {
	src    binutil.Source
	walker *Walker
	opts   Options
}

// NewDecoder creates a Decoder. src must be positioned at the "ID3" magic.
func NewDecoder(src binutil.Source, opts Options) *Decoder {
	return &Decoder{src: src, opts: opts}
}

// Decode reads the tag header and walks the frames.
//
// A header failure returns a nil tag. A frame failure returns the frames
// decoded so far together with the error.
func (d *Decoder) Decode() (*types.Tag, error) {
	if d.walker != nil {
		return d.walker.Walk()
	}

	h, err := ReadTagHeader(d.src)
	if err != nil {
		return nil, err
	}

	d.walker = NewWalker(d.src, h, d.opts.WalkOptions)
	tag := d.walker.Tag()

	if d.opts.MaxTagSize > 0 && h.Size > d.opts.MaxTagSize {
		d.walker.fail(&types.DecodeError{
			Kind:   types.ErrOversizedFrame,
			What:   "tag size",
			Offset: 6,
			Err:    fmt.Errorf("tag declares %d bytes, limit is %d", h.Size, d.opts.MaxTagSize),
		}, "")
		return tag, d.walker.Err()
	}

	checkHeader(tag, d.opts)
	return d.walker.Walk()
}

// State returns the walker state, or StateStart before the header is read.
func (d *Decoder) State() State {
	if d.walker == nil {
		return StateStart
	}
	return d.walker.State()
}

// Remaining returns the declared tag bytes not yet consumed.
func (d *Decoder) Remaining() uint32 {
	if d.walker == nil {
		return 0
	}
	return d.walker.Remaining()
}

// checkHeader records header features the decoder does not act on.
func checkHeader(tag *types.Tag, opts Options) {
	h := tag.Header
	if h.Major < 3 || h.Major > 4 {
		tag.Warn("header", 0, "unexpected version %s; frames decoded with the 2.3/2.4 layout", h.Version())
	}
	if h.Flags.ExtendedHeader {
		tag.Warn("header", 0, "extended header present but not skipped")
	}
	if h.Flags.Unsynchronisation && !opts.Resync {
		tag.Warn("header", 0, "tag is unsynchronised; frame bodies left as stored")
	}
}
