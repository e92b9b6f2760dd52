package id3meta

// Option configures how tags are decoded.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3meta.Parse(r,
//	    id3meta.WithMaxTagSize(1<<20),
//	    id3meta.WithConsumePadding(),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse.
type parseOptions struct {
	strictParsing  bool   // Fail on any warning, drop partial tags
	ignoreWarnings bool   // Suppress all warnings
	resync         bool   // Undo unsynchronisation in frame bodies
	consumePadding bool   // Leave the source at the first audio byte
	maxTagSize     uint32 // Largest declared tag size accepted (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		resync:         true,
		consumePadding: false,
		maxTagSize:     0, // No limit
	}
}

func applyOptions(opts []Option) *parseOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStrictParsing treats any warning as a fatal error and never returns
// partial tags.
//
// By default a failure after the tag header returns the frames decoded so far
// together with the error, and non-fatal issues (compressed frames, an
// extended header) are only recorded as warnings.
//
// Example:
//
//	tag, err := id3meta.Parse(r, id3meta.WithStrictParsing())
//	// tag == nil whenever err != nil
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Tag.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithResync controls whether frame bodies of unsynchronised tags are
// resynchronised (0xFF 0x00 collapsed to 0xFF). Enabled by default.
func WithResync(enabled bool) Option {
	return func(o *parseOptions) {
		o.resync = enabled
	}
}

// WithConsumePadding reads through the padding after the last frame, so
// that a stream source is left at the first byte of audio.
//
// Example:
//
//	tag, err := id3meta.Parse(r, id3meta.WithConsumePadding())
//	// r now yields the MPEG audio frames
func WithConsumePadding() Option {
	return func(o *parseOptions) {
		o.consumePadding = true
	}
}

// WithMaxTagSize rejects tags that declare more than n bytes, before any
// frame is read. This bounds memory when decoding untrusted input.
//
// Default is 0 (no limit; the format itself caps tags at 256MB).
func WithMaxTagSize(n uint32) Option {
	return func(o *parseOptions) {
		o.maxTagSize = n
	}
}
