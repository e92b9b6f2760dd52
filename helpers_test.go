package id3meta_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// synchsafe encodes n as four 7-bit bytes.
func synchsafe(n uint32) []byte {
	return []byte{byte(n >> 21 & 0x7F), byte(n >> 14 & 0x7F), byte(n >> 7 & 0x7F), byte(n & 0x7F)}
}

type testFrame struct {
	id     string
	format byte
	body   []byte
}

func textFrame(id, text string) testFrame {
	return testFrame{id: id, body: append([]byte{0x03}, text...)}
}

// buildTag assembles a v2.4 tag followed by padding and a fake audio payload.
func buildTag(padding int, audio []byte, frames ...testFrame) []byte {
	body := &bytes.Buffer{}
	for _, f := range frames {
		body.WriteString(f.id)
		body.Write(synchsafe(uint32(len(f.body))))
		body.Write([]byte{0x00, f.format})
		body.Write(f.body)
	}
	body.Write(make([]byte, padding))

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{0x04, 0x00, 0x00})
	buf.Write(synchsafe(uint32(body.Len())))
	buf.Write(body.Bytes())
	buf.Write(audio)
	return buf.Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
