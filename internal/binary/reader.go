// Package binary provides bounds-checked byte sources and the synchsafe
// integer codec shared by the ID3v2 decoders.
package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3meta/internal/types"
)

// Source is a sequential byte source. The decoders never seek or re-read:
// every call continues where the previous one stopped.
type Source interface {
	// ReadFull returns exactly n bytes or fails with types.ErrTruncatedInput.
	// what names the structure being read for error messages.
	ReadFull(n int, what string) ([]byte, error)

	// Offset returns the number of bytes consumed so far.
	Offset() int64
}

// Discarder is implemented by sources that can skip bytes without
// allocating a buffer for them.
type Discarder interface {
	Discard(n int64, what string) error
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// checkBounds fails with ErrTruncatedInput unless n bytes at off lie inside
// the reader.
func (sr *SafeReader) checkBounds(off, n int64, what string) error {
	if off >= 0 && n >= 0 && off+n <= sr.size {
		return nil
	}
	return &types.DecodeError{
		Kind:   types.ErrTruncatedInput,
		Path:   sr.path,
		Offset: off,
		What:   what,
		Err: &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: int(n),
			Size:   sr.size,
		},
	}
}

// ReadAt reads len(b) bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if err := sr.checkBounds(off, int64(len(b)), what); err != nil {
		return err
	}

	n, err := sr.r.ReadAt(b, off)
	if n < len(b) {
		if err == nil || errors.Is(err, io.EOF) {
			err = fmt.Errorf("short read: got %d bytes, expected %d", n, len(b))
		}
		return &types.DecodeError{
			Kind:   types.ErrTruncatedInput,
			Path:   sr.path,
			Offset: off,
			What:   what,
			Err:    err,
		}
	}

	return nil
}

// Reader provides sequential reading over a SafeReader with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

var (
	_ Source    = (*Reader)(nil)
	_ Discarder = (*Reader)(nil)
)

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadFull reads n bytes and advances the offset. Nothing is allocated for a
// read that would pass the end of the reader.
func (r *Reader) ReadFull(n int, what string) ([]byte, error) {
	if err := r.checkBounds(r.offset, int64(n), what); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += int64(n)
	return buf, nil
}

// Discard advances the offset by n bytes, failing if that would pass the end
// of the underlying reader.
func (r *Reader) Discard(n int64, what string) error {
	if err := r.checkBounds(r.offset, n, what); err != nil {
		return err
	}
	r.offset += n
	return nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// StreamReader adapts an io.Reader into a Source. It is the only Source that
// works on pipes and network bodies, where nothing can be re-read.
type StreamReader struct {
	r      io.Reader
	path   string
	offset int64
}

var (
	_ Source    = (*StreamReader)(nil)
	_ Discarder = (*StreamReader)(nil)
)

// NewStreamReader creates a StreamReader. path is only used in error messages
// and may be empty.
func NewStreamReader(r io.Reader, path string) *StreamReader {
	return &StreamReader{r: r, path: path}
}

// streamChunk is the largest read buffered up front. Longer reads grow
// their buffer as bytes arrive, so a declared size alone cannot force a
// large allocation.
const streamChunk = 64 << 10

// ReadFull reads exactly n bytes and advances the offset by the number of
// bytes actually consumed, even on failure.
func (s *StreamReader) ReadFull(n int, what string) ([]byte, error) {
	var (
		buf []byte
		got int
		err error
	)
	if n <= streamChunk {
		buf = make([]byte, n)
		got, err = io.ReadFull(s.r, buf)
	} else {
		var b bytes.Buffer
		b.Grow(streamChunk)
		var copied int64
		copied, err = io.CopyN(&b, s.r, int64(n))
		buf, got = b.Bytes(), int(copied)
	}

	start := s.offset
	s.offset += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("short read: got %d bytes, expected %d", got, n)
		}
		return nil, &types.DecodeError{
			Kind:   types.ErrTruncatedInput,
			Path:   s.path,
			Offset: start,
			What:   what,
			Err:    err,
		}
	}
	return buf, nil
}

// Discard consumes n bytes without retaining them.
func (s *StreamReader) Discard(n int64, what string) error {
	got, err := io.CopyN(io.Discard, s.r, n)
	start := s.offset
	s.offset += got
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("short read: discarded %d bytes, expected %d", got, n)
		}
		return &types.DecodeError{
			Kind:   types.ErrTruncatedInput,
			Path:   s.path,
			Offset: start,
			What:   what,
			Err:    err,
		}
	}
	return nil
}

// Offset returns the number of bytes consumed so far.
func (s *StreamReader) Offset() int64 {
	return s.offset
}
