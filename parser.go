package id3meta

import (
	"fmt"
	"io"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3"
)

// Parser decodes one tag from one source.
//
// A Parser owns its source and the Tag it builds. It is not safe for
// concurrent use, but any number of Parsers may run in parallel.
type Parser struct {
	dec  *id3.Decoder
	opts *parseOptions
	tag  *Tag
	err  error
	done bool
}

// NewParser creates a parser reading sequentially from r. r must be
// positioned at the start of the tag ("ID3").
func NewParser(r io.Reader, opts ...Option) *Parser {
	return newParser(binutil.NewStreamReader(r, ""), applyOptions(opts))
}

// NewParserAt creates a parser reading from r, which holds size bytes
// starting with the tag.
func NewParserAt(r io.ReaderAt, size int64, opts ...Option) *Parser {
	return newParserAt(r, size, "", applyOptions(opts))
}

func newParserAt(r io.ReaderAt, size int64, path string, o *parseOptions) *Parser {
	sr := binutil.NewSafeReader(r, size, path)
	return newParser(binutil.NewReader(sr, 0), o)
}

func newParser(src binutil.Source, o *parseOptions) *Parser {
	return &Parser{
		dec: id3.NewDecoder(src, id3.Options{
			WalkOptions: id3.WalkOptions{
				Resync:         o.resync,
				ConsumePadding: o.consumePadding,
			},
			MaxTagSize: o.maxTagSize,
		}),
		opts: o,
	}
}

// Parse decodes the tag.
//
// If the tag header cannot be decoded, Parse returns a nil Tag. If a frame
// fails to decode, Parse returns the frames decoded before it together with
// the error (unless strict parsing is enabled). Repeated calls return the
// same result.
func (p *Parser) Parse() (*Tag, error) {
	if p.done {
		return p.tag, p.err
	}
	p.done = true

	tag, err := p.dec.Decode()
	if tag != nil && p.opts.ignoreWarnings {
		tag.Warnings = nil
	}

	if p.opts.strictParsing {
		if err == nil && tag != nil && len(tag.Warnings) > 0 {
			err = fmt.Errorf("strict parsing failed: %s", tag.Warnings[0])
		}
		if err != nil {
			tag = nil
		}
	}

	p.tag, p.err = tag, err
	return tag, err
}

// State returns where the parse is: StateStart before Parse, then StateDone
// or StateFailed.
func (p *Parser) State() State {
	return p.dec.State()
}

// Remaining returns the number of declared tag bytes that were not consumed.
// It is zero after a walk that ended exactly on the tag boundary.
func (p *Parser) Remaining() uint32 {
	return p.dec.Remaining()
}

// Parse decodes the tag at the start of r.
//
// Example:
//
//	tag, err := id3meta.Parse(resp.Body)
//	if err != nil && tag == nil {
//		return err
//	}
//	fmt.Println(tag.Title())
func Parse(r io.Reader, opts ...Option) (*Tag, error) {
	return NewParser(r, opts...).Parse()
}

// ParseAt decodes the tag at the start of r, which holds size bytes.
func ParseAt(r io.ReaderAt, size int64, opts ...Option) (*Tag, error) {
	return NewParserAt(r, size, opts...).Parse()
}
