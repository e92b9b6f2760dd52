// Package id3meta decodes ID3v2 tags from the start of an audio stream.
//
// A tag is a 10-byte header followed by frames (title, artist, pictures, ...).
// Frames are not indexed anywhere: each frame's size has to be decoded before
// the next one can be found, so decoding walks the tag strictly in order.
//
// # Quick Start
//
// Decoding the tag of a file:
//
//	file, err := id3meta.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Printf("%s - %s\n", file.Tag.Artist(), file.Tag.Title())
//
// Decoding from any io.Reader (a pipe, an HTTP body):
//
//	tag, err := id3meta.Parse(r)
//
// # Frames
//
// Frames whose identifier starts with 'T' are text frames; their encoding
// byte is interpreted and removed. Everything else is kept as opaque bytes.
// Compressed or encrypted frames are always opaque and flagged with
// NeedsTransform, since their bytes are not text until transformed:
//
//	for i, frame := range tag.All() {
//		if text, ok := frame.Text(); ok {
//			fmt.Printf("%d %s: %s\n", i, frame.ID(), text)
//		}
//	}
//
// # Error Handling
//
// Failures are classified by four error kinds, matched with errors.Is:
//
//   - ErrInvalidMagic: the stream does not start with "ID3"
//   - ErrTruncatedInput: the stream ended inside a header or body
//   - ErrInvalidEncoding: a frame identifier or text body is malformed
//   - ErrOversizedFrame: a frame claims more bytes than the tag holds
//
// A failure after the tag header still returns every frame decoded before
// it. Non-fatal issues (an extended header, a compressed frame) are recorded
// in Tag.Warnings.
//
// # Concurrency
//
// A Parser owns its source and the Tag it builds; nothing is shared between
// parsers. OpenMany and OpenEach decode independent files in parallel.
package id3meta
