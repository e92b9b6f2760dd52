package id3meta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// File is an opened audio file with its decoded tag.
//
// Always call Close() when done to release file resources:
//
//	file, err := id3meta.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Decoded tag (partial if Open returned an error alongside the File)
	Tag *Tag

	// Path to the audio file
	Path string

	// File size in bytes
	Size int64

	reader io.ReaderAt
}

// AudioOffset returns the offset of the first byte after the tag.
func (f *File) AudioOffset() int64 {
	if f.Tag == nil {
		return 0
	}
	return f.Tag.Header.TotalSize()
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Open opens an audio file and decodes its ID3v2 tag.
//
// If the tag header is invalid, Open returns a nil File. If decoding fails
// part way through the frames, Open returns the File holding the partial
// Tag together with the error, so callers can still use what was read:
//
//	file, err := id3meta.Open("song.mp3")
//	if file == nil {
//		return err
//	}
//	defer file.Close()
//	if err != nil {
//		log.Printf("partial tag: %v", err)
//	}
func Open(path string, opts ...Option) (*File, error) {
	return openFile(context.Background(), path, applyOptions(opts))
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before every read, so a cancelled context stops
// the frame walk at the next frame boundary. The resulting error matches
// both ErrTruncatedInput and the context's error.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return openFile(ctx, path, applyOptions(opts))
}

func openFile(ctx context.Context, path string, o *parseOptions) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}
	size := stat.Size()

	var r io.ReaderAt = f
	if ctx.Done() != nil {
		r = &ctxReaderAt{ctx: ctx, r: f}
	}

	tag, err := newParserAt(r, size, path, o).Parse()
	if tag == nil {
		f.Close()
		return nil, err
	}

	return &File{
		Tag:    tag,
		Path:   path,
		Size:   size,
		reader: f,
	}, err
}

// ctxReaderAt fails reads once its context is done.
type ctxReaderAt struct {
	ctx context.Context
	r   io.ReaderAt
}

func (c *ctxReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.ReadAt(p, off)
}

// OpenMany opens multiple audio files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open (including a partial tag), all successfully
// opened files are closed and an error is returned. Use OpenEach to keep
// per-file results instead.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := id3meta.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				if file != nil {
					file.Close()
				}
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Close any successfully opened files
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}

// Result is the outcome of opening one file with OpenEach.
type Result struct {
	// File is nil when the tag header could not be decoded.
	File *File
	// Err is set when decoding failed; File may still hold a partial tag.
	Err  error
	Path string
}

// OpenEach opens multiple files concurrently and reports every file's
// outcome, in input order. Only cancellation of ctx stops the batch early;
// files not started by then carry the context error.
//
// The caller must close every non-nil Result.File.
func OpenEach(ctx context.Context, paths []string, limit int, opts ...Option) []Result {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(limit)

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i].Path = path
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			results[i].File = file
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// IsPartial reports whether err came with a usable partial tag, i.e. it
// happened after the tag header was decoded.
func IsPartial(tag *Tag, err error) bool {
	return tag != nil && err != nil && !errors.Is(err, ErrInvalidMagic)
}
